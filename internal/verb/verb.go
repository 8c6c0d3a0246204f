package verb

import "fmt"

// Verb is a command the user can trigger, by typing its invocation or
// pressing one of its keys. Every verb executes an internal.
type Verb struct {
	// Name is the invocation name, empty for verbs only bound to keys.
	Name        string
	Description string
	Keys        []string
	// Parser is nil for verbs without invocation.
	Parser    *InvocationParser
	Execution InternalExecution
}

// NewBuiltinVerb is the verb named after internal, invoked with the
// internal's own pattern.
func NewBuiltinVerb(internal Internal) *Verb {
	parser := MustInvocationParser(internal.InvocationPattern())
	return &Verb{
		Name:        parser.Name(),
		Description: internal.Description(),
		Parser:      parser,
		Execution:   NewInternalExecution(internal),
	}
}

// NewVerb builds a verb from an invocation pattern, which may be empty for
// key-only verbs, and an execution.
func NewVerb(invocation string, exec InternalExecution) (*Verb, error) {
	v := &Verb{
		Description: exec.Internal.Description(),
		Execution:   exec,
	}
	if invocation != "" {
		parser, err := NewInvocationParser(invocation)
		if err != nil {
			return nil, err
		}
		v.Parser = parser
		v.Name = parser.Name()
	}
	return v, nil
}

// WithKeys appends key bindings.
func (v *Verb) WithKeys(keys ...string) *Verb {
	v.Keys = append(v.Keys, keys...)
	return v
}

// WithDescription replaces the description.
func (v *Verb) WithDescription(description string) *Verb {
	if description != "" {
		v.Description = description
	}
	return v
}

// Internal is the internal the verb executes.
func (v *Verb) Internal() Internal {
	return v.Execution.Internal
}

// HasKey reports whether key triggers the verb.
func (v *Verb) HasKey(key string) bool {
	for _, k := range v.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// CheckArgs verifies the typed arguments fit the invocation pattern.
func (v *Verb) CheckArgs(inv VerbInvocation) error {
	if v.Parser == nil {
		if inv.Args != nil {
			return &PatternMismatchError{
				Pattern: v.Execution.String(),
				Input:   *inv.Args,
				Reason:  "this verb takes no argument",
			}
		}
		return nil
	}
	return v.Parser.Check(inv)
}

// Usage is the invocation as shown in the help.
func (v *Verb) Usage() string {
	if v.Parser == nil {
		return ""
	}
	return v.Parser.Usage()
}

func (v *Verb) String() string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%s (key)", v.Execution)
}
