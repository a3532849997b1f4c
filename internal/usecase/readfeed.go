package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"rssread/internal/adapter/fetcher"
	"rssread/internal/domain"
	"rssread/internal/feed"
	"rssread/internal/xmltree"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

const snippetLen = 80

// FeedReader реализует чтение ленты: загрузку, разбор XML и извлечение записей.
// Все ошибки возвращаются как *feed.Error.
type FeedReader struct {
	fetcher FeedFetcher
	storage FeedStorage
	log     *slog.Logger
	diag    io.Writer
}

// NewFeedReader создает FeedReader.
// storage может быть nil, тогда Store ничего не делает.
// В diag печатаются статус и заголовки ответа в подробном режиме.
func NewFeedReader(fetcher FeedFetcher, storage FeedStorage, log *slog.Logger, diag io.Writer) *FeedReader {
	return &FeedReader{
		fetcher: fetcher,
		storage: storage,
		log:     log,
		diag:    diag,
	}
}

// ReadFeed загружает ленту по url и добавляет найденные записи в reply.
// Обработка прерывается на первой ошибке; записи, извлеченные до нее, остаются в reply.
func (r *FeedReader) ReadFeed(ctx context.Context, url string, reply *domain.FeedReply, verbose bool) error {
	start := time.Now()
	log := r.log.With(
		slog.String("component", "feed-reader"),
		slog.String("run_id", uuid.NewString()),
		slog.String("url", url),
	)
	log.Info("Reading feed started")

	resp, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Error("Feed fetch failed",
			slog.String("stage", "fetch"),
			slog.Any("error", err),
		)
		return feed.Wrap(feed.KindHTTP, err)
	}
	defer resp.Body.Close()

	if verbose {
		r.printResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Feed body read failed",
			slog.String("stage", "read"),
			slog.Any("error", err),
		)
		return feed.Wrap(readErrorKind(err), err)
	}
	log.Debug("Feed body read", slog.String("stage", "read"), slog.Int("bytes", len(body)))

	if err := checkHTML(resp.Header, body); err != nil {
		log.Error("Received a web page instead of a feed",
			slog.String("stage", "detect"),
			slog.Any("error", err),
		)
		return err
	}

	parser := xmltree.NewParser(bytes.NewReader(body))
	trees := 0
	for {
		tree, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error("Feed parsing failed",
				slog.String("stage", "parse"),
				slog.Any("error", err),
			)
			return feed.Wrap(feed.KindXMLParse, err)
		}
		trees++
		if err := feed.HandleTree(tree, reply); err != nil {
			log.Error("Feed extraction failed",
				slog.String("stage", "extract"),
				slog.String("format", feed.DetectFormat(tree).String()),
				slog.Any("error", err),
			)
			return feed.From(err)
		}
	}

	log.Info("Reading feed completed",
		slog.Int("trees", trees),
		slog.Int("items_found", len(reply.Items)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Store сохраняет записи reply в хранилище, если оно настроено.
func (r *FeedReader) Store(ctx context.Context, url string, reply *domain.FeedReply) (int, error) {
	if r.storage == nil {
		return 0, nil
	}
	saved, err := r.storage.SaveReply(ctx, url, reply)
	if err != nil {
		r.log.Error("Feed save failed",
			slog.String("component", "feed-reader"),
			slog.String("url", url),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("save failed for %s: %w", url, err)
	}
	r.log.Info("Feed items saved",
		slog.String("component", "feed-reader"),
		slog.Int("items_found", len(reply.Items)),
		slog.Int("items_saved", saved),
	)
	return saved, nil
}

// printResponse печатает статус и заголовки ответа, заголовки отсортированы по имени.
func (r *FeedReader) printResponse(resp *fetcher.Response) {
	if r.diag == nil {
		return
	}
	fmt.Fprintf(r.diag, "Response: %s\n", resp.Status)
	fmt.Fprintln(r.diag, "Headers:")
	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range resp.Header[name] {
			fmt.Fprintf(r.diag, "%s: %s\n", name, v)
		}
	}
}

// readErrorKind: таймаут при чтении тела считается ошибкой HTTP, прочие ошибки - ошибкой ввода-вывода.
func readErrorKind(err error) feed.Kind {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return feed.KindHTTP
	}
	return feed.KindIO
}

// checkHTML возвращает ошибку WasHTML, если сервер отдал HTML-страницу, не похожую на ленту.
// Документ с корнем <html>, отданный как XML, сюда не попадает и обрабатывается как RSS.
func checkHTML(header http.Header, body []byte) error {
	mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil || mediaType != "text/html" {
		return nil
	}
	if gofeed.DetectFeedType(bytes.NewReader(body)) != gofeed.FeedTypeUnknown {
		return nil
	}
	return feed.NewWasHTMLError(htmlSnippet(body))
}

// htmlSnippet возвращает заголовок страницы или начало ее текста.
func htmlSnippet(body []byte) string {
	text := ""
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		text = doc.Find("title").First().Text()
		if strings.TrimSpace(text) == "" {
			text = doc.Find("body").Text()
		}
	}
	if strings.TrimSpace(text) == "" {
		text = string(body)
	}
	return truncate(strings.Join(strings.Fields(text), " "), snippetLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
