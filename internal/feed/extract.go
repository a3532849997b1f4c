package feed

import (
	"rssread/internal/domain"
	"rssread/internal/xmltree"
)

// Format - формат ленты, определенный по корневому элементу.
type Format int

const (
	FormatUnknown Format = iota
	FormatRSS
	FormatAtom
)

func (f Format) String() string {
	switch f {
	case FormatRSS:
		return "rss"
	case FormatAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// TreeHandler извлекает данные из дерева документа в reply.
type TreeHandler func(root *xmltree.Element, reply *domain.FeedReply) error

// DetectFormat определяет формат по имени корневого элемента.
func DetectFormat(root *xmltree.Element) Format {
	switch root.Name {
	case "rss", "RDF":
		return FormatRSS
	case "feed":
		return FormatAtom
	default:
		return FormatUnknown
	}
}

// HandlerFor возвращает обработчик для формата.
// Пока все форматы, включая Atom и нераспознанные, обрабатываются как RSS.
func HandlerFor(Format) TreeHandler {
	// TODO: отдельный обработчик для Atom (entry/summary/updated).
	return HandleRSSTree
}

// HandleTree обрабатывает одно дерево, полученное от XML-парсера.
func HandleTree(root *xmltree.Element, reply *domain.FeedReply) error {
	return HandlerFor(DetectFormat(root))(root, reply)
}

var (
	isItem        = xmltree.Named("item")
	isAuthor      = xmltree.Named("author")
	isPubDate     = xmltree.Named("pubDate")
	isTitle       = xmltree.Named("title")
	isDescription = xmltree.Named("description")
)

// HandleRSSTree извлекает элементы item из дерева RSS.
// Первая же неразобранная дата публикации прерывает обработку всего дерева;
// уже добавленные элементы остаются в reply. Метаданные канала не извлекаются.
func HandleRSSTree(root *xmltree.Element, reply *domain.FeedReply) error {
	for _, itemElt := range xmltree.FindAll(root, isItem, false) {
		author := xmltree.FindTagText(itemElt, isAuthor)

		// отсутствующий или повторяющийся pubDate дает пустую строку и ошибку разбора даты
		pubDate, err := ParseDate(xmltree.FindTagText(itemElt, isPubDate))
		if err != nil {
			return From(err)
		}

		reply.Items = append(reply.Items, domain.FeedItem{
			Title:       xmltree.FindTagText(itemElt, isTitle),
			Description: xmltree.FindTagText(itemElt, isDescription),
			Author:      author,
			PubDate:     pubDate,
		})
	}
	return nil
}
