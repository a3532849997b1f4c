package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Reading("https://example.com/rss.xml")
	p.Status(nil)
	p.Status(errors.New("boom"))

	assert.Equal(t, "Reading \"https://example.com/rss.xml\"\nOK.\nError: boom\n", buf.String())
}

func TestPrinter_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Status(errors.New("boom"))

	assert.Contains(t, buf.String(), "Error: boom")
}
