// Package textutil makes file names and file content safe and measurable
// for the terminal.
package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop of previews.
const DefaultTabWidth = 4

// Sanitize returns text with nothing the terminal could interpret: control
// characters become '?', line breaks and tabs become spaces, and invisible
// formatting runes (bidi overrides, zero width joiners...) are spelled out
// so that a name can't pretend to be another one.
func Sanitize(text string) string {
	if strings.IndexFunc(text, unsafeRune) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case isFormatting(r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		case unicode.IsControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unsafeRune(r rune) bool {
	return unicode.IsControl(r) || isFormatting(r)
}

func isFormatting(r rune) bool {
	return unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp) || r == 0x180E
}

// ExpandTabs replaces tabs with the spaces reaching the next tab stop.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}
	var b strings.Builder
	column := 0
	for _, r := range text {
		if r != '\t' {
			b.WriteRune(r)
			column += max(runewidth.RuneWidth(r), 1)
			continue
		}
		spaces := tabWidth - column%tabWidth
		b.WriteString(strings.Repeat(" ", spaces))
		column += spaces
	}
	return b.String()
}

// DisplayWidth is the number of cells text takes. Grapheme clusters such
// as flags or emoji sequences count as one character.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// PadLeft right-aligns text on width cells.
func PadLeft(text string, width int) string {
	if pad := width - DisplayWidth(text); pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

// PadRight left-aligns text on width cells.
func PadRight(text string, width int) string {
	if pad := width - DisplayWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
