package xmltree

import (
	"encoding/xml"
	"fmt"
)

// EventKind - тип события разбора.
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventEndDocument
)

// Event - отдельное событие токенизатора, которое потребляет Builder.
type Event struct {
	Kind  EventKind
	Name  string
	Space string
	Attrs []xml.Attr
	Text  string
}

// SyntaxError описывает структурную ошибку XML: ошибку токенизатора,
// закрывающий тег без пары или конец документа при открытых элементах.
type SyntaxError struct {
	Msg  string
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("XML syntax error on line %d: %s", e.Line, e.Msg)
	}
	return "XML syntax error: " + e.Msg
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Builder собирает деревья из потока событий.
// Каждый раз, когда стек открытых элементов опустошается, Handle возвращает готовый корень.
type Builder struct {
	stack []*Element
}

// Handle применяет событие к текущему состоянию.
// Возвращает завершенное дерево или nil, если дерево еще не собрано.
func (b *Builder) Handle(ev Event) (*Element, error) {
	switch ev.Kind {
	case EventStart:
		el := &Element{Name: ev.Name, Space: ev.Space, Attrs: ev.Attrs}
		if parent := b.top(); parent != nil {
			parent.Children = append(parent.Children, el)
		}
		b.stack = append(b.stack, el)
	case EventEnd:
		top := b.top()
		if top == nil {
			return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected end element </%s>", ev.Name)}
		}
		if top.Name != ev.Name {
			return nil, &SyntaxError{Msg: fmt.Sprintf("element <%s> closed by </%s>", top.Name, ev.Name)}
		}
		b.stack = b.stack[:len(b.stack)-1]
		if len(b.stack) == 0 {
			return top, nil
		}
	case EventText:
		// текст вне корневого элемента отбрасывается
		parent := b.top()
		if parent == nil || ev.Text == "" {
			return nil, nil
		}
		if n := len(parent.Children); n > 0 {
			if prev, ok := parent.Children[n-1].(Text); ok {
				parent.Children[n-1] = prev + Text(ev.Text)
				return nil, nil
			}
		}
		parent.Children = append(parent.Children, Text(ev.Text))
	case EventEndDocument:
		if top := b.top(); top != nil {
			b.stack = nil
			return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected end of document inside <%s>", top.Name)}
		}
	}
	return nil, nil
}

// Pending сообщает, есть ли незавершенное дерево.
func (b *Builder) Pending() bool { return len(b.stack) > 0 }

func (b *Builder) top() *Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}
