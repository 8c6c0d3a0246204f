// Package command holds the outcome of running a verb: a value describing
// the panel transition the application has to apply.
package command

import (
	"fmt"

	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
)

// Direction is the side a new panel is opened on.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// SelectionType restricts what a panel opened for argument edition may
// select.
type SelectionType int

const (
	SelectionAny SelectionType = iota
	SelectionFile
	SelectionDirectory
)

// PurposeKind classifies new panels.
type PurposeKind int

const (
	PurposeNone PurposeKind = iota
	PurposePreview
	PurposeArgEdition
)

// PanelPurpose tells why a panel was opened.
type PanelPurpose struct {
	Kind PurposeKind
	// ArgType is only meaningful for PurposeArgEdition.
	ArgType SelectionType
}

// NoPurpose is plain browsing.
func NoPurpose() PanelPurpose {
	return PanelPurpose{Kind: PurposeNone}
}

// PreviewPurpose marks a preview panel.
func PreviewPurpose() PanelPurpose {
	return PanelPurpose{Kind: PurposePreview}
}

// ArgEditionPurpose marks a panel used to pick the argument of a pending
// command.
func ArgEditionPurpose(argType SelectionType) PanelPurpose {
	return PanelPurpose{Kind: PurposeArgEdition, ArgType: argType}
}

func (p PanelPurpose) IsPreview() bool {
	return p.Kind == PurposePreview
}

func (p PanelPurpose) IsArgEdition() bool {
	return p.Kind == PurposeArgEdition
}

func (p PanelPurpose) String() string {
	switch p.Kind {
	case PurposePreview:
		return "preview"
	case PurposeArgEdition:
		return "arg-edition"
	default:
		return "none"
	}
}

// Result is the outcome of a command. The application applies it; producing
// a Result never mutates shared UI state.
type Result interface {
	isResult()
}

// NoOp leaves everything as is.
type NoOp struct{}

// ReplaceCurrentPanel swaps the state of the active panel.
type ReplaceCurrentPanel struct {
	State statepkg.PanelState
}

// NewPanel opens a panel next to the active one.
type NewPanel struct {
	State     statepkg.PanelState
	Purpose   PanelPurpose
	Direction Direction
}

// DisplayError shows a message in the status line.
type DisplayError struct {
	Message string
}

// DisplayStatus shows an informative message in the status line.
type DisplayStatus struct {
	Message string
}

// PopState goes back to the previous state of the active panel.
type PopState struct{}

// ClosePanel closes the active panel. With Validate, an argument edition
// panel hands its selection to the panel it was opened from.
type ClosePanel struct {
	Validate bool
}

// Quit leaves the application, printing Output when not empty.
type Quit struct {
	Output string
}

func (NoOp) isResult()                {}
func (ReplaceCurrentPanel) isResult() {}
func (NewPanel) isResult()            {}
func (DisplayError) isResult()        {}
func (DisplayStatus) isResult()       {}
func (PopState) isResult()            {}
func (ClosePanel) isResult()          {}
func (Quit) isResult()                {}

// FromBrowserState wraps the construction of a browser state: the state
// replaces the current panel, a failure is displayed.
func FromBrowserState(state *statepkg.BrowserState, err error) Result {
	if err != nil {
		return DisplayError{Message: err.Error()}
	}
	return ReplaceCurrentPanel{State: state}
}

// Errorf builds a DisplayError from a format.
func Errorf(format string, args ...any) DisplayError {
	return DisplayError{Message: fmt.Sprintf(format, args...)}
}
