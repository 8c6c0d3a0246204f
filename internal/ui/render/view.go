package render

// LineKind selects the style of a line.
type LineKind int

const (
	LineText LineKind = iota
	// LineRoot is the first line of a panel: the tree root or the title.
	LineRoot
	LineDir
	LineFile
	LineLink
	LineHidden
)

// Line is a row of a panel.
type Line struct {
	Text     string
	Kind     LineKind
	Selected bool
}

// PanelView is what a panel displays. Width is the requested width, 0 to
// share the screen evenly.
type PanelView struct {
	Lines  []Line
	Scroll int
	Active bool
	Width  int
}

// View is the whole screen: the panels side by side, then the status line
// and the input line.
type View struct {
	Panels        []PanelView
	Input         string
	InputCursor   int
	Status        string
	StatusIsError bool
}
