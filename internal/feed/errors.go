package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net"
	"net/url"

	"rssread/internal/xmltree"
)

// Kind - вид ошибки обработки ленты.
type Kind int

const (
	// KindIO - ошибка ввода-вывода при чтении тела ответа.
	KindIO Kind = iota + 1
	// KindHTTP - ошибка транспорта, таймаут или неуспешный статус ответа.
	KindHTTP
	// KindXMLParse - структурная ошибка XML.
	KindXMLParse
	// KindDateParse - дата публикации не разобрана как RFC 2822.
	KindDateParse
	// KindUnknownFeedType - XML получен, но формат ленты не распознан.
	KindUnknownFeedType
	// KindField - обязательное поле отсутствует или некорректно.
	KindField
	// KindWasHTML - вместо ленты получена веб-страница.
	KindWasHTML
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindHTTP:
		return "http"
	case KindXMLParse:
		return "xml_parse"
	case KindDateParse:
		return "date_parse"
	case KindUnknownFeedType:
		return "unknown_feed_type"
	case KindField:
		return "field"
	case KindWasHTML:
		return "was_html"
	default:
		return "unknown"
	}
}

// Error - единый тип ошибок чтения RSS/Atom лент.
// Для KindIO, KindHTTP, KindXMLParse и KindDateParse хранит исходную ошибку в Err,
// для KindField - имя поля в Detail, для KindWasHTML - фрагмент страницы в Detail.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

// ErrUnknownFeedType зарезервирована для диспетчеризации по форматам.
var ErrUnknownFeedType = &Error{Kind: KindUnknownFeedType}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownFeedType:
		return "Unknown feed type."
	case KindField:
		return fmt.Sprintf("Required field %q missing from RSS/Atom feed.", e.Detail)
	case KindWasHTML:
		return fmt.Sprintf("Expected an RSS/ATOM feed but received a web page %q.", e.Detail)
	}
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is сравнивает ошибки без вложенной причины по виду,
// так что errors.Is(err, ErrUnknownFeedType) работает для любых копий.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Err != nil || t.Detail != "" {
		return false
	}
	return e.Kind == t.Kind
}

// NewFieldError сообщает об отсутствии обязательного поля.
func NewFieldError(name string) *Error {
	return &Error{Kind: KindField, Detail: name}
}

// NewWasHTMLError сообщает, что вместо ленты получена HTML-страница.
func NewWasHTMLError(snippet string) *Error {
	return &Error{Kind: KindWasHTML, Detail: snippet}
}

// Wrap помечает err видом kind. Если в цепочке уже есть *Error, он возвращается без изменений.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return &Error{Kind: kind, Err: err}
}

// From классифицирует ошибку нижнего уровня в фиксированном порядке:
// *Error, ошибка даты, ошибка XML, сетевая ошибка; все прочее считается ошибкой ввода-вывода.
func From(err error) error {
	if err == nil {
		return nil
	}
	var (
		fe  *Error
		de  *DateError
		tse *xmltree.SyntaxError
		xse *xml.SyntaxError
		ue  *url.Error
		ne  net.Error
	)
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.As(err, &de):
		return &Error{Kind: KindDateParse, Err: err}
	case errors.As(err, &tse), errors.As(err, &xse):
		return &Error{Kind: KindXMLParse, Err: err}
	case errors.As(err, &ue), errors.As(err, &ne),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &Error{Kind: KindHTTP, Err: err}
	default:
		return &Error{Kind: KindIO, Err: err}
	}
}

// KindOf возвращает вид ошибки из цепочки err или 0, если *Error в ней нет.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
