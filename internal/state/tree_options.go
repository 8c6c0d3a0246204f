package state

import "fmt"

// Sort is the ordering of tree entries.
type Sort int

const (
	SortNone Sort = iota
	SortCount
	SortDate
	SortSize
	SortType
	SortTypeDirsFirst
	SortTypeDirsLast
)

func (s Sort) String() string {
	switch s {
	case SortCount:
		return "count"
	case SortDate:
		return "date"
	case SortSize:
		return "size"
	case SortType:
		return "type"
	case SortTypeDirsFirst:
		return "type-dirs-first"
	case SortTypeDirsLast:
		return "type-dirs-last"
	default:
		return "none"
	}
}

// TreeOptions control what a browser panel lists and shows.
type TreeOptions struct {
	ShowHidden       bool
	ShowDates        bool
	ShowSizes        bool
	ShowPermissions  bool
	ShowCounts       bool
	ShowGitFileInfo  bool
	ShowDeviceID     bool
	ShowRootFs       bool
	OnlyFolders      bool
	TrimRoot         bool
	RespectGitIgnore bool
	// MaxDepth limits the depth of the tree, 0 meaning no limit.
	MaxDepth int
	Sort     Sort
	// Pattern filters entries by name: a glob when it contains glob
	// characters, a fuzzy match otherwise.
	Pattern string
}

// DefaultTreeOptions returns the options of a fresh panel.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{RespectGitIgnore: true}
}

// ApplyFlags changes the options according to flag letters, lowercase
// enabling and uppercase disabling, e.g. "sdH".
func (o *TreeOptions) ApplyFlags(flags string) error {
	for _, c := range flags {
		switch c {
		case 'c', 'C':
			o.ShowCounts = c == 'c'
		case 'd', 'D':
			o.ShowDates = c == 'd'
		case 'f', 'F':
			o.OnlyFolders = c == 'f'
		case 'g', 'G':
			o.ShowGitFileInfo = c == 'g'
		case 'h', 'H':
			o.ShowHidden = c == 'h'
		case 'i', 'I':
			o.RespectGitIgnore = c == 'I'
		case 'p', 'P':
			o.ShowPermissions = c == 'p'
		case 's', 'S':
			o.ShowSizes = c == 's'
		case 't', 'T':
			o.TrimRoot = c == 't'
		default:
			return fmt.Errorf("unknown flag: %q", c)
		}
	}
	return nil
}
