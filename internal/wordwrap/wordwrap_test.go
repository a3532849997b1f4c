package wordwrap

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

func TestWrap_ShortLinesUnchanged(t *testing.T) {
	assert.Equal(t, "hello world", Wrap("hello world", 72, 20))
	assert.Equal(t, "a\nb", Wrap("a\r\nb\n", 72, 20))
	assert.Equal(t, "", Wrap("", 72, 20))
}

func TestWrap_BreaksAtRightmostSpace(t *testing.T) {
	got := Wrap("aaa bbb ccc ddd", 10, 5)
	assert.Equal(t, "aaa bbb\nccc ddd", got)
}

func TestWrap_HardBreakWithoutSpace(t *testing.T) {
	got := Wrap("abcdefghijklmnop", 5, 2)
	assert.Equal(t, "abcde\nfghij\nklmno\np", got)
}

func TestWrap_SpaceOutsideWindowIsIgnored(t *testing.T) {
	// пробел на позиции 1 вне окна последних maxWord графем
	got := Wrap("a bcdefghij", 6, 2)
	assert.Equal(t, "a bcde\nfghij", got)
}

func TestWrap_CountsGraphemesNotBytes(t *testing.T) {
	line := strings.Repeat("é", 8) + " " + strings.Repeat("👍🏽", 4)
	got := Wrap(line, 10, 4)
	assert.Equal(t, strings.Repeat("é", 8)+"\n"+strings.Repeat("👍🏽", 4), got)
}

func TestWrap_NoLineLongerThanMax(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet, consectetur adipiscing elit ", 20)
	for _, line := range strings.Split(Wrap(text, 30, 10), "\n") {
		assert.LessOrEqual(t, uniseg.GraphemeClusterCount(line), 30)
	}
}

func TestWrap_InvalidParams(t *testing.T) {
	assert.Equal(t, "abc def", Wrap("abc def", 0, 20))
	assert.Equal(t, "ab\ncd", Wrap("abcd", 2, 5))
}
