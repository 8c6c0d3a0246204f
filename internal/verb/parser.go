package verb

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrPatternMismatch is matched by errors returned when typed text doesn't
// fit an invocation pattern.
var ErrPatternMismatch = errors.New("invocation doesn't match pattern")

// PatternMismatchError carries the pattern and the offending input.
type PatternMismatchError struct {
	Pattern string
	Input   string
	Reason  string
}

func (e *PatternMismatchError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (usage: %s)", e.Reason, e.Pattern)
	}
	return fmt.Sprintf("%q doesn't match %s", e.Input, e.Pattern)
}

func (e *PatternMismatchError) Is(target error) bool {
	return target == ErrPatternMismatch
}

// argSlotRe finds `{name}` and `{name:type}` slots of an invocation pattern.
var argSlotRe = regexp.MustCompile(`\{([a-zA-Z][\w-]*)(?::([a-zA-Z]\w*))?\}`)

// InvocationParser extracts named arguments from typed text according to a
// pattern such as `line_down (?P<count>\d*)?` or `gotar {path}`.
type InvocationParser struct {
	pattern  string
	name     string
	argsSpec string
	argsRe   *regexp.Regexp
	// groupArgs maps regexp group names back to argument names.
	groupArgs map[string]string
}

// NewInvocationParser compiles pattern. The first word is the verb name, the
// remainder describes the arguments.
func NewInvocationParser(pattern string) (*InvocationParser, error) {
	inv := ParseVerbInvocation(pattern)
	if inv.IsEmpty() {
		return nil, fmt.Errorf("invalid invocation pattern %q: missing name", pattern)
	}
	if inv.Bang {
		return nil, fmt.Errorf("invalid invocation pattern %q: unexpected bang", pattern)
	}
	p := &InvocationParser{
		pattern:   pattern,
		name:      inv.Name,
		groupArgs: make(map[string]string),
	}
	if inv.Args == nil {
		return p, nil
	}
	p.argsSpec = *inv.Args
	expr := argSlotRe.ReplaceAllStringFunc(p.argsSpec, func(slot string) string {
		parts := argSlotRe.FindStringSubmatch(slot)
		group := strings.ReplaceAll(parts[1], "-", "_")
		p.groupArgs[group] = parts[1]
		return fmt.Sprintf("(?P<%s>%s)", group, slotExpr(parts[2]))
	})
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("invalid invocation pattern %q: %w", pattern, err)
	}
	for _, group := range re.SubexpNames() {
		if group == "" {
			continue
		}
		if _, ok := p.groupArgs[group]; !ok {
			p.groupArgs[group] = group
		}
	}
	p.argsRe = re
	return p, nil
}

// MustInvocationParser is NewInvocationParser for patterns known to be valid.
func MustInvocationParser(pattern string) *InvocationParser {
	p, err := NewInvocationParser(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func slotExpr(kind string) string {
	if kind != "theme" {
		return ".+"
	}
	alternatives := make([]string, len(SyntaxThemes))
	for i, theme := range SyntaxThemes {
		alternatives[i] = regexp.QuoteMeta(theme)
	}
	return strings.Join(alternatives, "|")
}

// Name is the verb name the pattern starts with.
func (p *InvocationParser) Name() string {
	return p.name
}

// Pattern returns the source pattern, as shown in the help.
func (p *InvocationParser) Pattern() string {
	return p.pattern
}

// TakesArgs reports whether the pattern declares arguments.
func (p *InvocationParser) TakesArgs() bool {
	return p.argsRe != nil
}

// ArgNames lists the declared argument names in pattern order.
func (p *InvocationParser) ArgNames() []string {
	if p.argsRe == nil {
		return nil
	}
	var names []string
	for _, group := range p.argsRe.SubexpNames() {
		if group != "" {
			names = append(names, p.groupArgs[group])
		}
	}
	return names
}

// Usage is a human readable form of the pattern, `{name}` for every slot.
func (p *InvocationParser) Usage() string {
	if p.argsRe == nil {
		return p.name
	}
	names := p.ArgNames()
	slots := make([]string, len(names))
	for i, name := range names {
		slots[i] = "{" + name + "}"
	}
	sep := " "
	if p.name == flagsPrefix {
		sep = ""
	}
	return p.name + sep + strings.Join(slots, " ")
}

// Match parses raw, a full invocation text, into its named arguments.
// Arguments which are absent or empty are not part of the result.
func (p *InvocationParser) Match(raw string) (map[string]string, error) {
	inv := ParseVerbInvocation(raw)
	if inv.Name != p.name {
		return nil, &PatternMismatchError{Pattern: p.pattern, Input: raw}
	}
	return p.Parse(inv.Args)
}

// Parse matches the argument part of an invocation.
func (p *InvocationParser) Parse(args *string) (map[string]string, error) {
	captures := make(map[string]string)
	if p.argsRe == nil {
		if args != nil {
			return nil, &PatternMismatchError{
				Pattern: p.pattern,
				Input:   *args,
				Reason:  fmt.Sprintf("%s takes no argument", p.name),
			}
		}
		return captures, nil
	}
	text := ""
	if args != nil {
		text = *args
	}
	match := p.argsRe.FindStringSubmatch(text)
	if match == nil {
		return nil, &PatternMismatchError{Pattern: p.pattern, Input: text}
	}
	for i, group := range p.argsRe.SubexpNames() {
		if group == "" || match[i] == "" {
			continue
		}
		captures[p.groupArgs[group]] = match[i]
	}
	return captures, nil
}

// Check validates the arguments of inv without keeping the captures.
func (p *InvocationParser) Check(inv VerbInvocation) error {
	_, err := p.Parse(inv.Args)
	return err
}
