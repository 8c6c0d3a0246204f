package state

import (
	"github.com/spf13/afero"

	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
)

// FileEntry is a listed directory entry.
type FileEntry = fsutil.Entry

// Screen holds the terminal geometry panels are laid out in.
type Screen struct {
	Width  int
	Height int
}

// PageHeight is the number of tree lines visible in a panel.
func (s Screen) PageHeight() int {
	h := s.Height - 2
	if h < 1 {
		return 1
	}
	return h
}

// AppContext is the read-only environment shared by every panel.
type AppContext struct {
	Fs          afero.Fs
	Resolver    *fsutil.Resolver
	SyntaxTheme string
}

// NewAppContext builds a context over fsys, the OS filesystem when nil.
func NewAppContext(fsys afero.Fs) *AppContext {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &AppContext{
		Fs:       fsys,
		Resolver: fsutil.NewResolver(fsys),
	}
}

// FS returns the filesystem, defaulting to the OS one.
func (c *AppContext) FS() afero.Fs {
	if c == nil || c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

// PathResolver returns the resolver, defaulting to the OS one.
func (c *AppContext) PathResolver() *fsutil.Resolver {
	if c == nil || c.Resolver == nil {
		return fsutil.DefaultResolver()
	}
	return c.Resolver
}

// AppState is the snapshot of application-wide values verbs may refer to.
type AppState struct {
	// Root is the root of the active panel's tree.
	Root string
	// InitialRoot is the directory the application was launched on.
	InitialRoot string
	// OtherPanelPath is the selection of the other panel, if any.
	OtherPanelPath string
}

// PanelState is the state displayed by a panel.
type PanelState interface {
	// Root is the tree root, or the previewed file.
	Root() string
	SelectedPath() string
	IsRootSelected() bool
	Options() TreeOptions
	Title() string
}
