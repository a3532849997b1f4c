package xmltree

import (
	"encoding/xml"
	"errors"
	"io"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// Parser выдает готовые деревья из XML-потока.
// Токенизацию выполняет goxpp в строгом режиме, сборку деревьев - Builder.
type Parser struct {
	pp      *xpp.XMLPullParser
	builder Builder
	done    bool
}

// NewParser создает парсер поверх r. Кодировки, отличные от UTF-8,
// перекодируются по атрибуту encoding из XML-декларации.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		pp: xpp.NewXMLPullParser(r, true, charset.NewReaderLabel),
	}
}

// Next возвращает следующее завершенное дерево.
// Когда входные данные исчерпаны, возвращает io.EOF. После любой ошибки парсер
// больше не выдает деревьев.
func (p *Parser) Next() (*Element, error) {
	if p.done {
		return nil, io.EOF
	}
	for {
		ev, err := p.nextEvent()
		if err != nil {
			p.done = true
			return nil, err
		}
		tree, err := p.builder.Handle(ev)
		if err != nil {
			p.done = true
			return nil, err
		}
		if tree != nil {
			return tree, nil
		}
		if ev.Kind == EventEndDocument {
			p.done = true
			return nil, io.EOF
		}
	}
}

// ParseAll читает все деревья из r.
func ParseAll(r io.Reader) ([]*Element, error) {
	p := NewParser(r)
	var trees []*Element
	for {
		tree, err := p.Next()
		if errors.Is(err, io.EOF) {
			return trees, nil
		}
		if err != nil {
			return trees, err
		}
		trees = append(trees, tree)
	}
}

func (p *Parser) nextEvent() (Event, error) {
	for {
		tok, err := p.pp.NextToken()
		if err != nil {
			return Event{}, syntaxError(err)
		}
		switch tok {
		case xpp.StartTag:
			return Event{Kind: EventStart, Name: p.pp.Name, Space: p.pp.Space, Attrs: p.pp.Attrs}, nil
		case xpp.EndTag:
			return Event{Kind: EventEnd, Name: p.pp.Name}, nil
		case xpp.Text:
			return Event{Kind: EventText, Text: p.pp.Text}, nil
		case xpp.EndDocument:
			return Event{Kind: EventEndDocument}, nil
		}
		// комментарии, инструкции обработки и директивы пропускаются
	}
}

func syntaxError(err error) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Msg: se.Msg, Line: se.Line, Err: err}
	}
	return &SyntaxError{Msg: err.Error(), Err: err}
}
