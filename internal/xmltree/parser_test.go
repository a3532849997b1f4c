package xmltree

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestParser_SingleTree(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<!-- comment -->
<rss version="2.0"><channel><item><title>Hello &amp; bye</title><description><![CDATA[<p>Body</p>]]></description></item></channel></rss>`

	p := NewParser(strings.NewReader(data))
	tree, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, tree)

	assert.Equal(t, "rss", tree.Name)
	version, _ := tree.Attr("version")
	assert.Equal(t, "2.0", version)
	assert.Equal(t, "Hello & bye", FindTagText(tree, Named("title")))
	assert.Equal(t, "<p>Body</p>", FindTagText(tree, Named("description")))

	_, err = p.Next()
	assert.True(t, errors.Is(err, io.EOF))
	_, err = p.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestParser_MultipleTrees(t *testing.T) {
	trees, err := ParseAll(strings.NewReader(`<a>1</a><b>2</b>`))
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, "a", trees[0].Name)
	assert.Equal(t, "2", FindAllText(trees[1], false))
}

func TestParser_EmptyInput(t *testing.T) {
	trees, err := ParseAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, trees)
}

func TestParser_UnclosedTag(t *testing.T) {
	trees, err := ParseAll(strings.NewReader(`<rss><channel><item><title>x</title>`))
	require.Error(t, err)
	assert.Empty(t, trees)

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "XML syntax error")
}

func TestParser_MismatchedTag(t *testing.T) {
	_, err := ParseAll(strings.NewReader(`<rss><channel></rss>`))
	require.Error(t, err)

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Line)
}

func TestParser_StopsAfterError(t *testing.T) {
	p := NewParser(strings.NewReader(`<a></b><c/>`))
	_, err := p.Next()
	require.Error(t, err)
	_, err = p.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestParser_Latin1Encoding(t *testing.T) {
	data := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><title>caf\xe9</title>"
	trees, err := ParseAll(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, "café", FindAllText(trees[0], false))
}
