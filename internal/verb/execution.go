package verb

import (
	"fmt"
	"strings"
)

// InternalExecution binds an internal to the argument and bang given in
// configuration, e.g. `:focus ~/projects` or `:focus!`.
type InternalExecution struct {
	Internal Internal
	Bang     bool
	Arg      *string
}

// NewInternalExecution returns an execution without argument nor bang.
func NewInternalExecution(internal Internal) InternalExecution {
	return InternalExecution{Internal: internal}
}

// ParseInternalExecution parses an execution string. The leading colon is
// optional. Unknown internal names are rejected with an
// UnknownInternalError.
func ParseInternalExecution(s string) (InternalExecution, error) {
	inv := ParseVerbInvocation(s)
	if inv.IsEmpty() {
		return InternalExecution{}, fmt.Errorf("empty execution %q", s)
	}
	name := inv.Name
	if name == flagsPrefix {
		name = InternalApplyFlags.Name()
	}
	internal, err := InternalFromName(name)
	if err != nil {
		return InternalExecution{}, err
	}
	return InternalExecution{
		Internal: internal,
		Bang:     inv.Bang,
		Arg:      inv.Args,
	}, nil
}

// HasArg tells whether a literal argument is bound.
func (e InternalExecution) HasArg() bool {
	return e.Arg != nil
}

// NeedsSelection delegates to the internal with the bound argument.
func (e InternalExecution) NeedsSelection() bool {
	return e.Internal.NeedsSelection(e.Arg)
}

func (e InternalExecution) String() string {
	var b strings.Builder
	b.WriteByte(':')
	b.WriteString(e.Internal.Name())
	if e.Bang {
		b.WriteByte('!')
	}
	if e.Arg != nil {
		b.WriteByte(' ')
		b.WriteString(*e.Arg)
	}
	return b.String()
}
