package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Foreground  tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	// InactiveSelectionBg marks the selection of the panels without focus.
	InactiveSelectionBg tcell.Color
	DirectoryFg         tcell.Color
	SymlinkFg           tcell.Color
	FileFg              tcell.Color
	SeparatorFg         tcell.Color
	FooterBg            tcell.Color
	FooterFg            tcell.Color
	ErrorFg             tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Foreground:          tcell.ColorDefault,
		HiddenFg:            tcell.ColorLightSlateGray,
		SelectionBg:         tcell.Color33,
		SelectionFg:         tcell.ColorWhite,
		InactiveSelectionBg: tcell.Color238,
		DirectoryFg:         tcell.Color33,
		SymlinkFg:           tcell.Color51,
		FileFg:              tcell.ColorDefault,
		SeparatorFg:         tcell.Color240,
		FooterBg:            tcell.ColorDefault,
		FooterFg:            tcell.ColorDefault,
		ErrorFg:             tcell.ColorRed,
	}
}
