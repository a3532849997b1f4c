package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(elts []*Element) []string {
	out := make([]string, 0, len(elts))
	for _, e := range elts {
		out = append(out, e.Name)
	}
	return out
}

func sampleTree() *Element {
	return NewElement("rss",
		NewElement("channel",
			NewElement("title", Text("Channel")),
			NewElement("item",
				NewElement("title", Text("First")),
				NewElement("item", NewElement("title", Text("Nested"))),
			),
			NewElement("item",
				NewElement("title", Text("Second")),
			),
		),
	)
}

func TestFindAll_NonRecursiveSkipsInsideMatches(t *testing.T) {
	root := sampleTree()

	items := FindAll(root, Named("item"), false)

	require.Len(t, items, 2)
	// вложенный item не останавливает поиск title: у первого item два заголовка
	assert.Equal(t, "", FindTagText(items[0], Named("title")))
	titles := FindAll(items[0], Named("title"), false)
	require.Len(t, titles, 2)
	assert.Equal(t, "First", FindAllText(titles[0], false))
	assert.Equal(t, "Nested", FindAllText(titles[1], false))
	assert.Equal(t, "Second", FindTagText(items[1], Named("title")))
}

func TestFindAll_RecursiveDescendsIntoMatches(t *testing.T) {
	root := sampleTree()

	items := FindAll(root, Named("item"), true)

	require.Len(t, items, 3)
	titles := FindAll(root, Named("title"), true)
	assert.Equal(t, []string{"title", "title", "title", "title"}, names(titles))
	assert.Equal(t, "Channel", FindAllText(titles[0], false))
	assert.Equal(t, "Nested", FindAllText(titles[2], false))
	assert.Equal(t, "Second", FindAllText(titles[3], false))
}

func TestFindAll_MatchesRootAndKeepsDocumentOrder(t *testing.T) {
	root := NewElement("a",
		NewElement("b", NewElement("c")),
		NewElement("c"),
	)
	all := FindAll(root, func(*Element) bool { return true }, true)
	assert.Equal(t, []string{"a", "b", "c", "c"}, names(all))

	top := FindAll(root, func(*Element) bool { return true }, false)
	assert.Equal(t, []string{"a"}, names(top))
}

func TestFindAll_NoMatches(t *testing.T) {
	assert.Empty(t, FindAll(sampleTree(), Named("entry"), false))
}

func TestFindAllText(t *testing.T) {
	root := NewElement("p",
		Text("a"),
		NewElement("b", Text("b"), NewElement("i", Text("c"))),
		Text("d"),
	)

	assert.Equal(t, "ad", FindAllText(root, false))
	assert.Equal(t, "abcd", FindAllText(root, true))
	assert.Equal(t, "", FindAllText(NewElement("empty"), true))
}

func TestFindTagText(t *testing.T) {
	tests := []struct {
		name string
		root *Element
		want string
	}{
		{
			name: "single match concatenates fragments",
			root: NewElement("item", NewElement("title", Text("a"), Text("b"))),
			want: "ab",
		},
		{
			name: "single match ignores nested element text",
			root: NewElement("item", NewElement("title", Text("a"), NewElement("em", Text("x")), Text("b"))),
			want: "ab",
		},
		{
			name: "no match",
			root: NewElement("item", NewElement("link", Text("x"))),
			want: "",
		},
		{
			name: "multiple matches",
			root: NewElement("item", NewElement("title", Text("a")), NewElement("title", Text("b"))),
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindTagText(tt.root, Named("title")))
		})
	}
}

func TestElementAttr(t *testing.T) {
	trees, err := ParseAll(stringsReader(`<link href="https://example.com" rel="self"/>`))
	require.NoError(t, err)
	require.Len(t, trees, 1)

	href, ok := trees[0].Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", href)
	_, ok = trees[0].Attr("type")
	assert.False(t, ok)
}
