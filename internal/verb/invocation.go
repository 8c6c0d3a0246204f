package verb

import (
	"strings"
	"unicode"
)

// flagsPrefix starts the shorthand for apply_flags, e.g. `-sd`.
const flagsPrefix = "-"

// VerbInvocation is what the user typed to call a verb: a name, an optional
// bang and the text following the name.
type VerbInvocation struct {
	Name string
	Bang bool
	Args *string
}

// ParseVerbInvocation splits text into a verb invocation. A leading colon
// is ignored. Leading spaces of the arguments are dropped, the rest of the
// argument text is kept verbatim.
func ParseVerbInvocation(text string) VerbInvocation {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	text = strings.TrimPrefix(text, ":")

	if strings.HasPrefix(text, flagsPrefix) {
		inv := VerbInvocation{Name: flagsPrefix}
		if rest := text[len(flagsPrefix):]; rest != "" {
			inv.Args = &rest
		}
		return inv
	}

	name, rest := text, ""
	if idx := strings.IndexFunc(text, unicode.IsSpace); idx >= 0 {
		name, rest = text[:idx], text[idx:]
	}
	inv := VerbInvocation{Name: name}
	if strings.HasSuffix(inv.Name, "!") {
		inv.Name = strings.TrimSuffix(inv.Name, "!")
		inv.Bang = true
	}
	if args := strings.TrimLeftFunc(rest, unicode.IsSpace); args != "" {
		inv.Args = &args
	}
	return inv
}

// IsEmpty reports an invocation without a name.
func (inv VerbInvocation) IsEmpty() bool {
	return inv.Name == ""
}

// ArgsOrEmpty returns the argument text, or "" when there's none.
func (inv VerbInvocation) ArgsOrEmpty() string {
	if inv.Args == nil {
		return ""
	}
	return *inv.Args
}

func (inv VerbInvocation) String() string {
	var b strings.Builder
	b.WriteString(inv.Name)
	if inv.Bang {
		b.WriteByte('!')
	}
	if inv.Args != nil {
		if inv.Name != flagsPrefix {
			b.WriteByte(' ')
		}
		b.WriteString(*inv.Args)
	}
	return b.String()
}
