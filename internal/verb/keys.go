package verb

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedKeys are the key names accepted besides single characters. Aliases
// map to the canonical name.
var namedKeys = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"esc":       "esc",
	"escape":    "esc",
	"tab":       "tab",
	"backtab":   "backtab",
	"backspace": "backspace",
	"delete":    "delete",
	"del":       "delete",
	"insert":    "insert",
	"ins":       "insert",
	"home":      "home",
	"end":       "end",
	"pgup":      "pgup",
	"pageup":    "pgup",
	"pgdn":      "pgdn",
	"pagedown":  "pgdn",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"space":     "space",
}

var keyModifiers = []string{"ctrl", "alt", "shift"}

// NormalizeKey parses a key description such as "Ctrl-Q", "alt+enter" or
// "F5" into its canonical form: lowercase modifiers in the ctrl, alt, shift
// order, then the key name ("ctrl-q", "alt-enter", "f5").
func NormalizeKey(desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", fmt.Errorf("empty key")
	}
	if desc == "-" || desc == "+" {
		return desc, nil
	}

	mods := map[string]bool{}
	rest := desc
	for {
		idx := strings.IndexAny(rest, "-+")
		if idx <= 0 || idx == len(rest)-1 {
			break
		}
		mod := strings.ToLower(rest[:idx])
		switch mod {
		case "ctrl", "control", "c":
			mods["ctrl"] = true
		case "alt", "meta", "a":
			mods["alt"] = true
		case "shift", "s":
			mods["shift"] = true
		default:
			return "", fmt.Errorf("invalid key %q: unknown modifier %q", desc, rest[:idx])
		}
		rest = rest[idx+1:]
	}

	name, err := keyName(rest)
	if err != nil {
		return "", fmt.Errorf("invalid key %q: %w", desc, err)
	}
	if mods["ctrl"] || mods["alt"] {
		// modifiers make the case of a letter meaningless
		name = strings.ToLower(name)
	}

	var b strings.Builder
	for _, mod := range keyModifiers {
		if mods[mod] {
			b.WriteString(mod)
			b.WriteByte('-')
		}
	}
	b.WriteString(name)
	return b.String(), nil
}

func keyName(s string) (string, error) {
	if utf8.RuneCountInString(s) == 1 {
		return s, nil
	}
	lower := strings.ToLower(s)
	if name, ok := namedKeys[lower]; ok {
		return name, nil
	}
	if strings.HasPrefix(lower, "f") {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 24 {
			return lower, nil
		}
	}
	return "", fmt.Errorf("unknown key name %q", s)
}
