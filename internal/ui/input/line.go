package input

import "unicode"

// Line is the editable input line. The cursor is a rune index; an optional
// selection spans from the anchor to the cursor.
type Line struct {
	runes  []rune
	cursor int
	anchor int // -1 when nothing is selected
}

// NewLine returns an empty line.
func NewLine() *Line {
	return &Line{anchor: -1}
}

// Text returns the content.
func (l *Line) Text() string {
	return string(l.runes)
}

// Cursor returns the cursor position in runes.
func (l *Line) Cursor() int {
	return l.cursor
}

// SetText replaces the content and puts the cursor at the end.
func (l *Line) SetText(text string) {
	l.runes = []rune(text)
	l.cursor = len(l.runes)
	l.anchor = -1
}

// Insert types text at the cursor, replacing the selection if any.
func (l *Line) Insert(text string) {
	l.deleteSelection()
	ins := []rune(text)
	next := make([]rune, 0, len(l.runes)+len(ins))
	next = append(next, l.runes[:l.cursor]...)
	next = append(next, ins...)
	next = append(next, l.runes[l.cursor:]...)
	l.runes = next
	l.cursor += len(ins)
}

// Clear empties the line.
func (l *Line) Clear() {
	l.SetText("")
}

// GoLeft moves the cursor one rune left.
func (l *Line) GoLeft() {
	l.anchor = -1
	if l.cursor > 0 {
		l.cursor--
	}
}

// GoRight moves the cursor one rune right.
func (l *Line) GoRight() {
	l.anchor = -1
	if l.cursor < len(l.runes) {
		l.cursor++
	}
}

func (l *Line) GoToStart() {
	l.anchor = -1
	l.cursor = 0
}

func (l *Line) GoToEnd() {
	l.anchor = -1
	l.cursor = len(l.runes)
}

// GoWordLeft moves to the start of the previous word.
func (l *Line) GoWordLeft() {
	l.anchor = -1
	l.cursor = l.wordStartBefore(l.cursor)
}

// GoWordRight moves past the end of the next word.
func (l *Line) GoWordRight() {
	l.anchor = -1
	l.cursor = l.wordEndAfter(l.cursor)
}

// DelCharLeft deletes the rune before the cursor, or the selection.
func (l *Line) DelCharLeft() {
	if l.deleteSelection() || l.cursor == 0 {
		return
	}
	l.remove(l.cursor-1, l.cursor)
}

// DelCharBelow deletes the rune at the cursor, or the selection.
func (l *Line) DelCharBelow() {
	if l.deleteSelection() || l.cursor >= len(l.runes) {
		return
	}
	l.remove(l.cursor, l.cursor+1)
}

// DelWordLeft deletes from the start of the previous word to the cursor.
func (l *Line) DelWordLeft() {
	if l.deleteSelection() {
		return
	}
	l.remove(l.wordStartBefore(l.cursor), l.cursor)
}

// DelWordRight deletes from the cursor to the end of the next word.
func (l *Line) DelWordRight() {
	if l.deleteSelection() {
		return
	}
	l.remove(l.cursor, l.wordEndAfter(l.cursor))
}

// SelectLeft extends the selection one rune left.
func (l *Line) SelectLeft() {
	if l.anchor < 0 {
		l.anchor = l.cursor
	}
	if l.cursor > 0 {
		l.cursor--
	}
}

// SelectRight extends the selection one rune right.
func (l *Line) SelectRight() {
	if l.anchor < 0 {
		l.anchor = l.cursor
	}
	if l.cursor < len(l.runes) {
		l.cursor++
	}
}

// Selection returns the selected range, ok false when nothing is selected.
func (l *Line) Selection() (start, end int, ok bool) {
	if l.anchor < 0 || l.anchor == l.cursor {
		return 0, 0, false
	}
	return min(l.anchor, l.cursor), max(l.anchor, l.cursor), true
}

// SelectedText is the selection, or the whole line when nothing is selected.
func (l *Line) SelectedText() string {
	if start, end, ok := l.Selection(); ok {
		return string(l.runes[start:end])
	}
	return l.Text()
}

// Cut removes and returns the selected text, the whole line when nothing
// is selected.
func (l *Line) Cut() string {
	text := l.SelectedText()
	if !l.deleteSelection() {
		l.Clear()
	}
	return text
}

func (l *Line) deleteSelection() bool {
	start, end, ok := l.Selection()
	l.anchor = -1
	if !ok {
		return false
	}
	l.remove(start, end)
	return true
}

func (l *Line) remove(start, end int) {
	if start >= end {
		return
	}
	l.runes = append(l.runes[:start:start], l.runes[end:]...)
	l.cursor = start
}

func (l *Line) wordStartBefore(pos int) int {
	for pos > 0 && unicode.IsSpace(l.runes[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(l.runes[pos-1]) {
		pos--
	}
	return pos
}

func (l *Line) wordEndAfter(pos int) int {
	for pos < len(l.runes) && unicode.IsSpace(l.runes[pos]) {
		pos++
	}
	for pos < len(l.runes) && !unicode.IsSpace(l.runes[pos]) {
		pos++
	}
	return pos
}
