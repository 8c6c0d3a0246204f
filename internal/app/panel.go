package app

import (
	"github.com/kk-code-lab/rdirverb/internal/command"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
)

// maxPanels is the number of panels shown side by side. Opening another one
// replaces the panel which isn't active.
const maxPanels = 2

// Panel is a column of the screen. It keeps the stack of the states it
// displayed, the last one being visible.
type Panel struct {
	states  []statepkg.PanelState
	purpose command.PanelPurpose
	// width is the requested width in cells, 0 to share the screen evenly.
	width int
}

func newPanel(state statepkg.PanelState, purpose command.PanelPurpose) *Panel {
	return &Panel{
		states:  []statepkg.PanelState{state},
		purpose: purpose,
	}
}

// State returns the displayed state.
func (p *Panel) State() statepkg.PanelState {
	return p.states[len(p.states)-1]
}

// Purpose tells why the panel was opened.
func (p *Panel) Purpose() command.PanelPurpose {
	return p.purpose
}

// Depth is the number of stacked states.
func (p *Panel) Depth() int {
	return len(p.states)
}

// Browser returns the displayed state when it's a browser.
func (p *Panel) Browser() (*statepkg.BrowserState, bool) {
	b, ok := p.State().(*statepkg.BrowserState)
	return b, ok
}

func (p *Panel) push(state statepkg.PanelState) {
	p.states = append(p.states, state)
}

// setState replaces the displayed state without growing the stack.
func (p *Panel) setState(state statepkg.PanelState) {
	p.states[len(p.states)-1] = state
}

// pop removes the displayed state. The first state is never removed.
func (p *Panel) pop() bool {
	if len(p.states) < 2 {
		return false
	}
	p.states = p.states[:len(p.states)-1]
	return true
}
