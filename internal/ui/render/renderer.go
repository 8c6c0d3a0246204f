package render

import (
	"github.com/gdamore/tcell/v2"

	textutil "github.com/kk-code-lab/rdirverb/internal/textutil"
)

// Renderer draws views on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a renderer drawing on screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the panels side by side, the status line and the input
// line.
func (r *Renderer) Render(view View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	bodyHeight := max(h-2, 0)
	requested := make([]int, len(view.Panels))
	for i, panel := range view.Panels {
		requested[i] = panel.Width
	}
	widths := PanelWidths(w, requested)

	separatorStyle := tcell.StyleDefault.Foreground(r.theme.SeparatorFg)
	x := 0
	for i, panel := range view.Panels {
		r.drawPanel(panel, x, widths[i], bodyHeight)
		x += widths[i]
		if i < len(view.Panels)-1 {
			for y := 0; y < bodyHeight; y++ {
				r.screen.SetContent(x, y, '│', nil, separatorStyle)
			}
			x++
		}
	}

	if h >= 2 {
		r.drawStatusLine(view, w, h-2)
	}
	r.drawInputLine(view, w, h-1)
	r.screen.Show()
}

func (r *Renderer) lineStyle(line Line, active bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.theme.Foreground)
	switch line.Kind {
	case LineRoot:
		style = style.Bold(true)
	case LineDir:
		style = style.Foreground(r.theme.DirectoryFg)
	case LineFile:
		style = style.Foreground(r.theme.FileFg)
	case LineLink:
		style = style.Foreground(r.theme.SymlinkFg)
	case LineHidden:
		style = style.Foreground(r.theme.HiddenFg)
	}
	if line.Selected {
		if active {
			return style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}
		return style.Background(r.theme.InactiveSelectionBg)
	}
	return style
}

func (r *Renderer) drawPanel(panel PanelView, startX, width, height int) {
	if width <= 0 {
		return
	}
	scroll := max(panel.Scroll, 0)
	for row := 0; row < height; row++ {
		idx := scroll + row
		if idx >= len(panel.Lines) {
			break
		}
		line := panel.Lines[idx]
		style := r.lineStyle(line, panel.Active)
		text := textutil.Sanitize(line.Text)
		if line.Kind == LineRoot {
			text = truncateLeft(text, width)
		} else {
			text = truncateRight(text, width)
		}
		endX := r.drawText(startX, row, width, text, style)
		if line.Selected {
			for x := endX; x < startX+width; x++ {
				r.screen.SetContent(x, row, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) drawStatusLine(view View, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	if view.StatusIsError {
		style = style.Foreground(r.theme.ErrorFg)
	}
	r.drawText(0, y, w, truncateRight(textutil.Sanitize(view.Status), w), style)
}

// drawInputLine draws the input and places the cursor. When the text is
// wider than the screen, its start is hidden.
func (r *Renderer) drawInputLine(view View, w, y int) {
	runes := []rune(textutil.Sanitize(view.Input))
	cursor := min(max(view.InputCursor, 0), len(runes))

	start := 0
	for start < cursor && textutil.DisplayWidth(string(runes[start:cursor])) >= w {
		start++
	}
	r.drawText(0, y, w, string(runes[start:]), tcell.StyleDefault)
	r.screen.ShowCursor(textutil.DisplayWidth(string(runes[start:cursor])), y)
}
