package verb

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
)

// placeholderRe finds `{name}` slots of an execution template. A type
// suffix, as in `{theme:theme}`, is accepted and ignored.
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z][\w-]*)(?::[\w-]*)?\}`)

// ExecutionStringBuilder fills the placeholders of execution templates.
// Values come first from the arguments the outer verb captured from the
// input, then from the selection and the application state.
type ExecutionStringBuilder struct {
	sel      SelInfo
	app      statepkg.AppState
	captures map[string]string
	resolver *fsutil.Resolver
}

// NewBuilderWithInvocation prepares a builder for a verb whose invocation
// pattern is parser and whose typed arguments are inputArg. A nil parser or
// arguments not fitting it just leave no capture.
func NewBuilderWithInvocation(parser *InvocationParser, sel SelInfo, app statepkg.AppState, inputArg *string) *ExecutionStringBuilder {
	b := NewBuilderWithoutInvocation(sel, app)
	if parser != nil && inputArg != nil {
		if captures, err := parser.Parse(inputArg); err == nil {
			b.captures = captures
		}
	}
	return b
}

// NewBuilderWithoutInvocation prepares a builder resolving only against the
// selection and the application state.
func NewBuilderWithoutInvocation(sel SelInfo, app statepkg.AppState) *ExecutionStringBuilder {
	return &ExecutionStringBuilder{
		sel:      sel,
		app:      app,
		captures: map[string]string{},
		resolver: fsutil.DefaultResolver(),
	}
}

// WithResolver sets the resolver used for path computations.
func (b *ExecutionStringBuilder) WithResolver(r *fsutil.Resolver) *ExecutionStringBuilder {
	if r != nil {
		b.resolver = r
	}
	return b
}

// Captures returns the arguments captured from the input.
func (b *ExecutionStringBuilder) Captures() map[string]string {
	return b.captures
}

// String replaces every placeholder of template. Unresolved placeholders
// become empty. Substituted values are not scanned again.
func (b *ExecutionStringBuilder) String(template string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(slot string) string {
		name := placeholderRe.FindStringSubmatch(slot)[1]
		if value, ok := b.captures[name]; ok {
			return value
		}
		if value, ok := b.selectionValue(name); ok {
			return value
		}
		return ""
	})
}

// Path builds template and resolves the result, relative to the selected
// directory, into a path.
func (b *ExecutionStringBuilder) Path(template string) string {
	return b.resolver.PathFrom(b.baseDir(), fsutil.AnchorUnspecified, b.String(template))
}

// Invocation rebuilds the command text of an internal execution whose
// argument is a template.
func (b *ExecutionStringBuilder) Invocation(exec InternalExecution) string {
	if exec.Arg == nil {
		return exec.String()
	}
	arg := b.String(*exec.Arg)
	return InternalExecution{Internal: exec.Internal, Bang: exec.Bang, Arg: &arg}.String()
}

func (b *ExecutionStringBuilder) baseDir() string {
	if path, ok := b.sel.OnePath(); ok {
		return path
	}
	return b.app.Root
}

func (b *ExecutionStringBuilder) isDir(path string) bool {
	info, err := b.resolver.Fs.Stat(path)
	return err == nil && info.IsDir()
}

func (b *ExecutionStringBuilder) directoryOf(path string) string {
	if b.isDir(path) {
		return path
	}
	return filepath.Dir(path)
}

func (b *ExecutionStringBuilder) selectionValue(name string) (string, bool) {
	switch name {
	case "root":
		return b.app.Root, b.app.Root != ""
	case "initial-root":
		return b.app.InitialRoot, b.app.InitialRoot != ""
	case "line":
		if sel, ok := b.sel.One(); ok && sel.Line > 0 {
			return strconv.Itoa(sel.Line), true
		}
		return "", false
	case "other-panel-file", "other-panel-path":
		return b.app.OtherPanelPath, b.app.OtherPanelPath != ""
	case "other-panel-directory":
		if b.app.OtherPanelPath == "" {
			return "", false
		}
		return b.directoryOf(b.app.OtherPanelPath), true
	case "other-panel-parent":
		if b.app.OtherPanelPath == "" {
			return "", false
		}
		return filepath.Dir(b.app.OtherPanelPath), true
	}

	paths := b.sel.Paths()
	if len(paths) == 0 {
		return "", false
	}
	values := make([]string, 0, len(paths))
	for _, path := range paths {
		value, ok := pathValue(name, path, b.directoryOf)
		if !ok {
			return "", false
		}
		values = append(values, value)
	}
	return strings.Join(values, " "), true
}

func pathValue(name, path string, directoryOf func(string) string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	switch name {
	case "file", "path":
		return path, true
	case "parent":
		return filepath.Dir(path), true
	case "directory":
		return directoryOf(path), true
	case "file-name":
		return base, true
	case "file-stem":
		return strings.TrimSuffix(base, ext), true
	case "file-extension":
		return strings.TrimPrefix(ext, "."), true
	case "file-dot-extension":
		return ext, true
	default:
		return "", false
	}
}
