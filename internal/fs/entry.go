package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// Entry is a file listed in a directory.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// NewEntry describes info, read in dir. The name is NFC normalized so that
// it compares equal to typed text, FullPath keeps the name found on disk.
// A link to a directory counts as a directory.
func NewEntry(fsys afero.Fs, dir string, info os.FileInfo) Entry {
	raw := info.Name()
	e := Entry{
		Name:      norm.NFC.String(raw),
		FullPath:  filepath.Join(dir, raw),
		IsDir:     info.IsDir(),
		IsSymlink: info.Mode()&os.ModeSymlink != 0,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Mode:      info.Mode(),
	}
	if e.IsSymlink {
		if target, err := fsys.Stat(e.FullPath); err == nil {
			e.IsDir = target.IsDir()
		}
	}
	return e
}

// IsHidden reports an entry hidden unless hidden files are shown.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}

// DisplayName is the name, ending with a separator for directories.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + string(filepath.Separator)
	}
	return e.Name
}
