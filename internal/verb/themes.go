package verb

// SyntaxThemes lists the themes accepted by set_syntax_theme.
var SyntaxThemes = []string{
	"GitHub",
	"base16-eighties.dark",
	"base16-mocha.dark",
	"base16-ocean.dark",
	"base16-ocean.light",
	"InspiredGitHub",
	"Solarized (dark)",
	"Solarized (light)",
}

// IsSyntaxTheme reports whether name is one of SyntaxThemes.
func IsSyntaxTheme(name string) bool {
	for _, theme := range SyntaxThemes {
		if theme == name {
			return true
		}
	}
	return false
}
