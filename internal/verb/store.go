package verb

import (
	"sort"
	"strings"
)

// SearchKind classifies the outcome of a verb search by name.
type SearchKind int

const (
	SearchNone SearchKind = iota
	// SearchPerfect is an exact name match.
	SearchPerfect
	// SearchUnique is a prefix shared by a single verb name.
	SearchUnique
	// SearchAmbiguous is a prefix shared by several verb names.
	SearchAmbiguous
)

// SearchResult is the outcome of Store.Search.
type SearchResult struct {
	Kind SearchKind
	Verb *Verb
	// Completions lists the matching names when the search is ambiguous.
	Completions []string
}

// defaultKeys binds the built-in internals to keys.
var defaultKeys = []struct {
	key      string
	internal Internal
	bang     bool
}{
	{"enter", InternalFocus, false},
	{"alt-enter", InternalFocus, true},
	{"esc", InternalBack, false},
	{"ctrl-q", InternalQuit, false},
	{"up", InternalLineUp, false},
	{"down", InternalLineDown, false},
	{"pgup", InternalPageUp, false},
	{"pgdn", InternalPageDown, false},
	{"home", InternalSelectFirst, false},
	{"end", InternalSelectLast, false},
	{"ctrl-left", InternalPanelLeft, false},
	{"ctrl-right", InternalPanelRight, false},
	{"ctrl-p", InternalTogglePreview, false},
	{"alt-h", InternalToggleHidden, false},
	{"ctrl-w", InternalClosePanelCancel, false},
	{"ctrl-c", InternalInputSelectionCopy, false},
	{"f1", InternalHelp, false},
	{"f5", InternalRefresh, false},
	{"left", InternalInputGoLeft, false},
	{"right", InternalInputGoRight, false},
	{"alt-left", InternalInputGoWordLeft, false},
	{"alt-right", InternalInputGoWordRight, false},
	{"ctrl-a", InternalInputGoToStart, false},
	{"ctrl-e", InternalInputGoToEnd, false},
	{"backspace", InternalInputDelCharLeft, false},
	{"delete", InternalInputDelCharBelow, false},
	{"alt-backspace", InternalInputDelWordLeft, false},
	{"alt-delete", InternalInputDelWordRight, false},
	{"ctrl-u", InternalInputClear, false},
	{"ctrl-v", InternalInputPaste, false},
	{"ctrl-x", InternalInputSelectionCut, false},
}

// Store holds the verbs available to the user: configured verbs first, so
// they take precedence, then one built-in verb per internal.
type Store struct {
	configured []*Verb
	builtins   []*Verb
}

// NewStore returns a store with the built-in verbs and key bindings.
func NewStore() *Store {
	s := &Store{}
	byInternal := make(map[Internal]*Verb, internalCount)
	for _, internal := range AllInternals() {
		v := NewBuiltinVerb(internal)
		byInternal[internal] = v
		s.builtins = append(s.builtins, v)
	}
	for _, binding := range defaultKeys {
		if !binding.bang {
			byInternal[binding.internal].WithKeys(binding.key)
			continue
		}
		exec := NewInternalExecution(binding.internal)
		exec.Bang = true
		s.builtins = append(s.builtins, &Verb{
			Description: binding.internal.Description() + " in a new panel",
			Keys:        []string{binding.key},
			Execution:   exec,
		})
	}
	return s
}

// Add registers a configured verb. Its keys are taken from the built-in
// verbs which had them.
func (s *Store) Add(v *Verb) {
	for _, key := range v.Keys {
		for _, builtin := range s.builtins {
			builtin.Keys = removeKey(builtin.Keys, key)
		}
	}
	s.configured = append(s.configured, v)
}

func removeKey(keys []string, key string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// Verbs lists every verb, configured ones first.
func (s *Store) Verbs() []*Verb {
	all := make([]*Verb, 0, len(s.configured)+len(s.builtins))
	all = append(all, s.configured...)
	return append(all, s.builtins...)
}

// ByKey returns the verb bound to key, nil when there's none.
func (s *Store) ByKey(key string) *Verb {
	for _, v := range s.Verbs() {
		if v.HasKey(key) {
			return v
		}
	}
	return nil
}

// ForEmptyInput returns the verb a key bound to v triggers when the input
// line is empty: with nothing to move through, left goes to the parent.
func (s *Store) ForEmptyInput(v *Verb) *Verb {
	if v != nil && v.Internal() == InternalInputGoLeft {
		return s.ByInternal(InternalParent)
	}
	return v
}

// ByInternal returns the built-in verb of internal.
func (s *Store) ByInternal(internal Internal) *Verb {
	for _, v := range s.builtins {
		if v.Name != "" && v.Internal() == internal {
			return v
		}
	}
	return nil
}

// Search looks a verb up by invocation name or name prefix.
func (s *Store) Search(name string) SearchResult {
	if name == "" {
		return SearchResult{Kind: SearchNone}
	}
	var (
		candidates []*Verb
		seen       = map[string]bool{}
	)
	for _, v := range s.Verbs() {
		if v.Name == "" {
			continue
		}
		if v.Name == name {
			return SearchResult{Kind: SearchPerfect, Verb: v}
		}
		if strings.HasPrefix(v.Name, name) && !seen[v.Name] {
			seen[v.Name] = true
			candidates = append(candidates, v)
		}
	}
	switch len(candidates) {
	case 0:
		return SearchResult{Kind: SearchNone}
	case 1:
		return SearchResult{Kind: SearchUnique, Verb: candidates[0]}
	}
	names := make([]string, len(candidates))
	for i, v := range candidates {
		names[i] = v.Name
	}
	sort.Strings(names)
	return SearchResult{Kind: SearchAmbiguous, Completions: names}
}
