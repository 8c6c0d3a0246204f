package verb

// Selection is one selected path, with the selected line when it comes
// from a preview.
type Selection struct {
	Path string
	Line int
}

// SelInfo is the selection verbs run on: nothing, one path, or several
// paths (e.g. staged files).
type SelInfo struct {
	sels []Selection
}

// NoSelection is the empty selection.
func NoSelection() SelInfo {
	return SelInfo{}
}

// OneSelection wraps a single selection.
func OneSelection(sel Selection) SelInfo {
	return SelInfo{sels: []Selection{sel}}
}

// SelFromPath is a single selection of path.
func SelFromPath(path string) SelInfo {
	return OneSelection(Selection{Path: path})
}

// SelFromPaths selects several paths at once.
func SelFromPaths(paths ...string) SelInfo {
	sels := make([]Selection, 0, len(paths))
	for _, p := range paths {
		sels = append(sels, Selection{Path: p})
	}
	return SelInfo{sels: sels}
}

// Count returns the number of selected paths.
func (s SelInfo) Count() int {
	return len(s.sels)
}

// One returns the selection when exactly one path is selected.
func (s SelInfo) One() (Selection, bool) {
	if len(s.sels) != 1 {
		return Selection{}, false
	}
	return s.sels[0], true
}

// OnePath returns the selected path when exactly one path is selected.
func (s SelInfo) OnePath() (string, bool) {
	sel, ok := s.One()
	return sel.Path, ok
}

// Paths returns every selected path.
func (s SelInfo) Paths() []string {
	paths := make([]string, len(s.sels))
	for i, sel := range s.sels {
		paths[i] = sel.Path
	}
	return paths
}
