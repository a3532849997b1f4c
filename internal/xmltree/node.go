package xmltree

import "encoding/xml"

// Node - дочерний узел дерева: либо *Element, либо Text.
type Node interface {
	node()
}

// Element представляет элемент XML-документа с именем, атрибутами и дочерними узлами.
// Порядок Children совпадает с порядком в документе.
type Element struct {
	Name     string
	Space    string
	Attrs    []xml.Attr
	Children []Node
}

// Text - фрагмент символьных данных внутри элемента.
type Text string

func (*Element) node() {}
func (Text) node()     {}

// NewElement создает элемент с заданным именем и дочерними узлами.
func NewElement(name string, children ...Node) *Element {
	return &Element{Name: name, Children: children}
}

// Attr возвращает значение атрибута по локальному имени.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
