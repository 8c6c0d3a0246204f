package input

import "testing"

func TestLineEditing(t *testing.T) {
	l := NewLine()
	l.Insert("focus ../sib")
	l.GoWordLeft()
	if l.Cursor() != 6 {
		t.Fatalf("GoWordLeft: cursor %d", l.Cursor())
	}
	l.Insert("~/")
	if got := l.Text(); got != "focus ~/../sib" {
		t.Fatalf("insert in the middle: %q", got)
	}

	l.GoToStart()
	l.DelWordRight()
	if got := l.Text(); got != " ~/../sib" {
		t.Fatalf("DelWordRight: %q", got)
	}
	l.DelCharBelow()
	if got := l.Text(); got != "~/../sib" {
		t.Fatalf("DelCharBelow: %q", got)
	}

	l.GoToEnd()
	l.DelWordLeft()
	if got := l.Text(); got != "" {
		t.Fatalf("DelWordLeft removes the whole word: %q", got)
	}
	l.DelCharLeft()
	if l.Text() != "" || l.Cursor() != 0 {
		t.Fatal("DelCharLeft on an empty line must be a no-op")
	}
}

func TestLineWordMoves(t *testing.T) {
	l := NewLine()
	l.SetText("cp  src   dst")
	l.GoToStart()
	l.GoWordRight()
	if l.Cursor() != 2 {
		t.Fatalf("first GoWordRight: %d", l.Cursor())
	}
	l.GoWordRight()
	if l.Cursor() != 7 {
		t.Fatalf("second GoWordRight: %d", l.Cursor())
	}
	l.GoWordLeft()
	if l.Cursor() != 4 {
		t.Fatalf("GoWordLeft: %d", l.Cursor())
	}
	l.GoLeft()
	l.GoLeft()
	l.GoRight()
	if l.Cursor() != 3 {
		t.Fatalf("GoLeft/GoRight: %d", l.Cursor())
	}
}

func TestLineSelection(t *testing.T) {
	l := NewLine()
	l.SetText("héllo")
	if _, _, ok := l.Selection(); ok {
		t.Fatal("no selection expected")
	}
	if l.SelectedText() != "héllo" {
		t.Fatalf("without selection the whole line is selected, got %q", l.SelectedText())
	}

	l.SelectLeft()
	l.SelectLeft()
	if got := l.SelectedText(); got != "lo" {
		t.Fatalf("SelectedText = %q", got)
	}
	l.Insert("p")
	if got := l.Text(); got != "hélp" {
		t.Fatalf("typing replaces the selection: %q", got)
	}

	l.GoToStart()
	l.SelectRight()
	if got := l.Cut(); got != "h" || l.Text() != "élp" {
		t.Fatalf("Cut returned %q, line %q", got, l.Text())
	}
	if got := l.Cut(); got != "élp" || l.Text() != "" {
		t.Fatalf("Cut without selection takes the line: %q, %q", got, l.Text())
	}
}
