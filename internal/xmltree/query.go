package xmltree

import "strings"

// Predicate проверяет отдельный элемент. Не должен зависеть от контекста обхода.
type Predicate func(e *Element) bool

// Named возвращает предикат, совпадающий с элементами с указанным локальным именем.
func Named(name string) Predicate {
	return func(e *Element) bool { return e.Name == name }
}

// FindAll обходит дерево в глубину (pre-order), начиная с самого root,
// и возвращает все элементы, для которых match вернул true, в порядке документа.
// При recurse == false внутрь найденного элемента поиск не спускается,
// соседние поддеревья при этом просматриваются.
func FindAll(root *Element, match Predicate, recurse bool) []*Element {
	var finds []*Element
	findAll(root, match, recurse, &finds)
	return finds
}

func findAll(e *Element, match Predicate, recurse bool, finds *[]*Element) {
	if match(e) {
		*finds = append(*finds, e)
		if !recurse {
			return
		}
	}
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			findAll(el, match, recurse, finds)
		}
	}
}

// FindAllText собирает текст дочерних узлов e. При recurse == true
// в результат попадает и текст вложенных элементов.
func FindAllText(e *Element, recurse bool) string {
	var sb strings.Builder
	findAllText(e, recurse, &sb)
	return sb.String()
}

func findAllText(e *Element, recurse bool, sb *strings.Builder) {
	for _, child := range e.Children {
		switch c := child.(type) {
		case *Element:
			if recurse {
				findAllText(c, recurse, sb)
			}
		case Text:
			sb.WriteString(string(c))
		}
	}
}

// FindTagText возвращает непосредственный текст единственного элемента под root,
// подходящего под match. Если совпадений нет или их несколько, возвращает "".
func FindTagText(root *Element, match Predicate) string {
	finds := FindAll(root, match, false)
	if len(finds) != 1 {
		return ""
	}
	return FindAllText(finds[0], false)
}
