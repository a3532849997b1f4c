package domain

import (
	"fmt"
	"io"
	"time"

	"rssread/internal/wordwrap"
)

// PubDateLayout - формат даты публикации в отладочном выводе.
const PubDateLayout = "2006-01-02 15:04:05 -07:00"

// FeedChannel представляет метаданные канала RSS или Atom.
type FeedChannel struct {
	Title       string
	Link        string
	Description string
}

// FeedItem представляет отдельную запись ленты.
// Description содержит исходную разметку, PubDate - время с фиксированным смещением.
type FeedItem struct {
	Title       string
	Description string
	Author      string
	PubDate     time.Time
}

// FeedReply - результат чтения ленты: канал и записи в порядке документа.
type FeedReply struct {
	Channel FeedChannel
	Items   []FeedItem
}

// Wrap задает параметры переноса описаний в отладочном выводе.
type Wrap struct {
	MaxLine int
	MaxWord int
}

// DefaultWrap - 72 символа в строке, слова длиннее 20 символов разрываются.
var DefaultWrap = Wrap{MaxLine: 72, MaxWord: 20}

// Dump печатает метаданные канала.
func (c *FeedChannel) Dump(w io.Writer) {
	fmt.Fprintln(w, "Feed Channel")
	fmt.Fprintf(w, " Title: %s\n", c.Title)
	fmt.Fprintf(w, " Link: %s\n", c.Link)
	fmt.Fprintf(w, " Description: %s\n", c.Description)
	fmt.Fprintln(w)
}

// Dump печатает запись, описание переносится по словам.
func (it *FeedItem) Dump(w io.Writer, wrap Wrap) {
	fmt.Fprintln(w, "Feed Item")
	fmt.Fprintf(w, " Title: %s\n", it.Title)
	fmt.Fprintf(w, " Author: %s\n", it.Author)
	fmt.Fprintf(w, " Publication date: %s\n", it.PubDate.Format(PubDateLayout))
	fmt.Fprintf(w, " Description:\n%s\n", wordwrap.Wrap(it.Description, wrap.MaxLine, wrap.MaxWord))
	fmt.Fprintln(w)
}

// Dump печатает канал и все записи.
func (r *FeedReply) Dump(w io.Writer, wrap Wrap) {
	r.Channel.Dump(w)
	for i := range r.Items {
		r.Items[i].Dump(w, wrap)
	}
}
