package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
)

// PathAnchor determines how the root of a path token is established.
type PathAnchor int

const (
	// AnchorUnspecified resolves relative tokens against the base path and
	// keeps absolute tokens as they are.
	AnchorUnspecified PathAnchor = iota
	// AnchorAbsolute roots every token at the filesystem root.
	AnchorAbsolute
	// AnchorHomeRelative roots every token at the user's home directory.
	AnchorHomeRelative
)

func (a PathAnchor) String() string {
	switch a {
	case AnchorAbsolute:
		return "absolute"
	case AnchorHomeRelative:
		return "home-relative"
	default:
		return "unspecified"
	}
}

// Resolver turns path tokens typed by the user into existing directories.
type Resolver struct {
	Fs      afero.Fs
	HomeDir func() (string, error)
	// Canonicalize resolves symbolic links. Nil disables canonicalization.
	Canonicalize func(string) (string, error)
}

// NewResolver builds a resolver over fsys. Symbolic links are only resolved
// when fsys is the OS filesystem and the platform is not Windows.
func NewResolver(fsys afero.Fs) *Resolver {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	r := &Resolver{
		Fs:      fsys,
		HomeDir: os.UserHomeDir,
	}
	if _, isOS := fsys.(*afero.OsFs); isOS && runtime.GOOS != "windows" {
		r.Canonicalize = filepath.EvalSymlinks
	}
	return r
}

var defaultResolver = NewResolver(afero.NewOsFs())

// DefaultResolver returns the resolver backed by the OS filesystem.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// PathFrom resolves token with the default resolver.
func PathFrom(base string, anchor PathAnchor, token string) string {
	return defaultResolver.PathFrom(base, anchor, token)
}

// ClosestDir returns the closest existing directory using the default resolver.
func ClosestDir(path string) string {
	return defaultResolver.ClosestDir(path)
}

// Canonicalize resolves symbolic links with the default resolver.
func Canonicalize(path string) string {
	return defaultResolver.CanonicalPath(path)
}

// Resolve turns token into an existing directory with the default resolver.
func Resolve(base string, anchor PathAnchor, token string) string {
	return defaultResolver.Resolve(base, anchor, token)
}

// Resolve computes the candidate path for token, canonicalizes it when
// possible and walks up to the closest existing directory.
func (r *Resolver) Resolve(base string, anchor PathAnchor, token string) string {
	return r.ClosestDir(r.CanonicalPath(r.PathFrom(base, anchor, token)))
}

// PathFrom builds the path designated by token, without checking that it
// exists. Relative tokens are joined to base, or to base's parent when base
// is a regular file.
func (r *Resolver) PathFrom(base string, anchor PathAnchor, token string) string {
	token = norm.NFC.String(token)
	if token == "" {
		return base
	}
	if rest, ok := trimHomePrefix(token); ok {
		return filepath.Join(r.home(base), rest)
	}
	if isAbsoluteToken(token) {
		return filepath.Clean(token)
	}
	switch anchor {
	case AnchorAbsolute:
		root := filepath.VolumeName(base) + string(filepath.Separator)
		return filepath.Join(root, token)
	case AnchorHomeRelative:
		return filepath.Join(r.home(base), token)
	default:
		return filepath.Join(r.baseDir(base), token)
	}
}

// CanonicalPath resolves symbolic links in path. Failures are not errors:
// the path is returned unchanged and the caller deals with it.
func (r *Resolver) CanonicalPath(path string) string {
	if r.Canonicalize == nil {
		return path
	}
	canonic, err := r.Canonicalize(path)
	if err != nil || canonic == "" {
		return path
	}
	return canonic
}

// ClosestDir returns path when it is a directory, its parent when it is a
// file, or its closest existing ancestor when it doesn't exist. The
// filesystem root is the floor.
func (r *Resolver) ClosestDir(path string) string {
	current := filepath.Clean(path)
	for {
		info, err := r.Fs.Stat(current)
		if err == nil && info.IsDir() {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return current
		}
		current = parent
	}
}

func (r *Resolver) baseDir(base string) string {
	if base == "" {
		return "."
	}
	info, err := r.Fs.Stat(base)
	if err == nil && !info.IsDir() {
		return filepath.Dir(base)
	}
	return base
}

func (r *Resolver) home(base string) string {
	if r.HomeDir != nil {
		if home, err := r.HomeDir(); err == nil && home != "" {
			return home
		}
	}
	return r.baseDir(base)
}

func trimHomePrefix(token string) (string, bool) {
	if token == "~" {
		return "", true
	}
	if strings.HasPrefix(token, "~/") {
		return token[2:], true
	}
	if runtime.GOOS == "windows" && strings.HasPrefix(token, `~\`) {
		return token[2:], true
	}
	return "", false
}

func isAbsoluteToken(token string) bool {
	if filepath.IsAbs(token) {
		return true
	}
	if filepath.VolumeName(token) != "" {
		return true
	}
	return strings.HasPrefix(token, "/") || strings.HasPrefix(token, string(filepath.Separator))
}
