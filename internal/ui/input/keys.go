package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "backtab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// KeyName returns the canonical name of a key event, in the form key
// bindings are written in ("ctrl-q", "alt-enter", "f5", "a").
func KeyName(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	var name string

	switch key := ev.Key(); {
	case key == tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			name = "space"
		} else {
			name = string(r)
		}
		if mods&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			name = strings.ToLower(name)
		}
		// the shift is already in the rune
		if name != "space" {
			mods &^= tcell.ModShift
		}
	case keyNames[key] != "":
		name = keyNames[key]
		if key == tcell.KeyBacktab {
			mods &^= tcell.ModShift
		}
	case key == tcell.KeyCtrlSpace:
		name = "space"
		mods |= tcell.ModCtrl
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		name = string(rune('a' + int(key-tcell.KeyCtrlA)))
		mods |= tcell.ModCtrl
	default:
		return ""
	}

	var b strings.Builder
	if mods&tcell.ModCtrl != 0 {
		b.WriteString("ctrl-")
	}
	if mods&tcell.ModAlt != 0 {
		b.WriteString("alt-")
	}
	if mods&tcell.ModShift != 0 {
		b.WriteString("shift-")
	}
	b.WriteString(name)
	return b.String()
}

// IsTextInput reports an event which types a character, with no modifier
// other than shift.
func IsTextInput(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return false
	}
	return unicode.IsPrint(ev.Rune())
}
