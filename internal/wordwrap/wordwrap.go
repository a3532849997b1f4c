// Package wordwrap переносит длинные строки по словам с учетом графем,
// чтобы многобайтовые символы и составные эмодзи не разрывались.
package wordwrap

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap переносит каждую строку s так, чтобы в ней было не больше maxLine графем.
// Разрыв ставится на самом правом пробеле в последних maxWord графемах окна;
// если пробела там нет, слово разрывается ровно по границе maxLine.
// maxWord должен быть меньше maxLine, иначе он уменьшается до maxLine-1.
// При maxLine <= 0 строки не переносятся.
func Wrap(s string, maxLine, maxWord int) string {
	if maxLine <= 0 {
		return strings.Join(lines(s), "\n")
	}
	if maxWord >= maxLine || maxWord < 0 {
		maxWord = maxLine - 1
	}
	src := lines(s)
	out := make([]string, 0, len(src))
	for _, line := range src {
		out = append(out, wrapLine(graphemes(line), maxLine, maxWord))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line []string, maxLine, maxWord int) string {
	var sb strings.Builder
	for len(line) > maxLine {
		ix := rfind(line[maxLine-maxWord:maxLine], " ")
		if ix < 0 {
			writeAll(&sb, line[:maxLine])
			sb.WriteByte('\n')
			line = line[maxLine:]
			continue
		}
		cut := ix + maxLine - maxWord
		writeAll(&sb, line[:cut])
		sb.WriteByte('\n')
		line = line[cut+1:]
	}
	writeAll(&sb, line)
	return sb.String()
}

func rfind(s []string, key string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == key {
			return i
		}
	}
	return -1
}

func writeAll(sb *strings.Builder, parts []string) {
	for _, p := range parts {
		sb.WriteString(p)
	}
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// lines делит текст на строки: "\r\n" считается одним переводом строки,
// завершающий перевод строки не дает пустой строки в конце.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
