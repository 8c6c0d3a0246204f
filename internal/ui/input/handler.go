package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rdirverb/internal/verb"
)

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Event tells the application what an input event amounts to.
type Event interface {
	isEvent()
}

// KeyPressed is a key which isn't handled by the input line. Verb is the
// verb bound to the key, nil when there's none.
type KeyPressed struct {
	Key  string
	Verb *verb.Verb
}

// InputChanged reports an edition of the input line.
type InputChanged struct{}

// Resized carries the new terminal size.
type Resized struct {
	Width  int
	Height int
}

// Suspend asks to give the terminal back to the shell.
type Suspend struct{}

// Ignored is an event with no effect.
type Ignored struct{}

func (KeyPressed) isEvent()   {}
func (InputChanged) isEvent() {}
func (Resized) isEvent()      {}
func (Suspend) isEvent()      {}
func (Ignored) isEvent()      {}

// Handler converts tcell events to key names and verbs, and applies the
// input related internals to the input line.
type Handler struct {
	store     *verb.Store
	line      *Line
	clipboard Clipboard
}

// NewHandler creates a handler resolving keys with store. The clipboard may
// be nil.
func NewHandler(store *verb.Store, clipboard Clipboard) *Handler {
	return &Handler{
		store:     store,
		line:      NewLine(),
		clipboard: clipboard,
	}
}

// Line returns the input line.
func (h *Handler) Line() *Line {
	return h.line
}

// ProcessEvent converts a tcell event into an Event.
func (h *Handler) ProcessEvent(ev tcell.Event) (Event, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.processKeyEvent(ev)
	case *tcell.EventResize:
		w, height := ev.Size()
		return Resized{Width: w, Height: height}, nil
	default:
		return Ignored{}, nil
	}
}

func (h *Handler) processKeyEvent(ev *tcell.EventKey) (Event, error) {
	key := KeyName(ev)
	v := h.store.ByKey(key)
	if h.line.Text() == "" {
		v = h.store.ForEmptyInput(v)
	}
	if v != nil {
		if v.Internal().IsInputRelated() {
			if err := h.ApplyInternal(v.Internal()); err != nil {
				return InputChanged{}, err
			}
			return InputChanged{}, nil
		}
		return KeyPressed{Key: key, Verb: v}, nil
	}

	switch key {
	case "ctrl-z":
		return Suspend{}, nil
	case "shift-left":
		h.line.SelectLeft()
		return InputChanged{}, nil
	case "shift-right":
		h.line.SelectRight()
		return InputChanged{}, nil
	}

	if IsTextInput(ev) {
		h.line.Insert(string(ev.Rune()))
		return InputChanged{}, nil
	}
	if key == "" {
		return Ignored{}, nil
	}
	return KeyPressed{Key: key}, nil
}

// ApplyInternal runs an input related internal on the input line.
func (h *Handler) ApplyInternal(internal verb.Internal) error {
	l := h.line
	switch internal {
	case verb.InternalInputClear:
		l.Clear()
	case verb.InternalInputDelCharBelow:
		l.DelCharBelow()
	case verb.InternalInputDelCharLeft:
		l.DelCharLeft()
	case verb.InternalInputDelWordLeft:
		l.DelWordLeft()
	case verb.InternalInputDelWordRight:
		l.DelWordRight()
	case verb.InternalInputGoLeft:
		l.GoLeft()
	case verb.InternalInputGoRight:
		l.GoRight()
	case verb.InternalInputGoToEnd:
		l.GoToEnd()
	case verb.InternalInputGoToStart:
		l.GoToStart()
	case verb.InternalInputGoWordLeft:
		l.GoWordLeft()
	case verb.InternalInputGoWordRight:
		l.GoWordRight()
	case verb.InternalInputPaste:
		if h.clipboard == nil {
			return fmt.Errorf("clipboard not available")
		}
		text, err := h.clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("cannot read clipboard: %w", err)
		}
		l.Insert(text)
	case verb.InternalInputSelectionCopy, verb.InternalInputSelectionCut:
		if h.clipboard == nil {
			return fmt.Errorf("clipboard not available")
		}
		text := l.SelectedText()
		if internal == verb.InternalInputSelectionCut {
			text = l.Cut()
		}
		if err := h.clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("cannot write clipboard: %w", err)
		}
	default:
		return fmt.Errorf("%s doesn't edit the input", internal)
	}
	return nil
}
