package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"alt enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModAlt), "alt-enter"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{"ctrl letter key", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "ctrl-q"},
		{"ctrl control char rune", tcell.NewEventKey(tcell.KeyRune, 0x11, tcell.ModNone), "ctrl-q"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModCtrl), "ctrl-q"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModAlt), "alt-h"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), "A"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"ctrl arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), "ctrl-left"},
		{"shift arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), "shift-right"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), "delete"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), "backtab"},
	}
	for _, tt := range tests {
		if got := KeyName(tt.ev); got != tt.want {
			t.Fatalf("%s: KeyName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsTextInput(t *testing.T) {
	if !IsTextInput(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)) {
		t.Fatal("a letter is text input")
	}
	if IsTextInput(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)) {
		t.Fatal("alt-x is not text input")
	}
	if IsTextInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("enter is not text input")
	}
}
