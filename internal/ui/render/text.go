package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// ellipsis marks the side where a text was cut.
const ellipsis = "…"

type cluster struct {
	text  string
	width int
}

// clusters splits text into user-perceived characters.
func clusters(text string) []cluster {
	var out []cluster
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, cluster{text: g.Str(), width: g.Width()})
	}
	return out
}

// truncateRight cuts the end of text so that it fits in width cells.
func truncateRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ellipsis
	}
	var b strings.Builder
	used := 0
	for _, c := range clusters(text) {
		if used+c.width > width-1 {
			break
		}
		b.WriteString(c.text)
		used += c.width
	}
	return b.String() + ellipsis
}

// truncateLeft cuts the start of text instead, paths being more telling
// by their end.
func truncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ellipsis
	}
	cs := clusters(text)
	start := len(cs)
	used := 0
	for start > 0 && used+cs[start-1].width <= width-1 {
		start--
		used += cs[start].width
	}
	var b strings.Builder
	b.WriteString(ellipsis)
	for _, c := range cs[start:] {
		b.WriteString(c.text)
	}
	return b.String()
}

// drawText draws text from x on row y without going past maxWidth cells,
// returning the column after the last drawn character.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) int {
	end := x + maxWidth
	for _, c := range clusters(text) {
		if c.width == 0 {
			continue
		}
		if x+c.width > end {
			break
		}
		runes := []rune(c.text)
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += c.width
	}
	return x
}
