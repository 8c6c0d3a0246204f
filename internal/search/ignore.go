package search

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/kk-code-lab/rdirverb/internal/logging"
)

type ignoreRule struct {
	glob    string
	base    string
	negate  bool
	dirOnly bool
}

// IgnoreRules tells which paths ignore files exclude. As in git, the last
// matching rule wins, so a negated rule brings back a path.
type IgnoreRules struct {
	rules []ignoreRule
}

// Add parses the content of an ignore file found in dir.
func (r *IgnoreRules) Add(content, dir string) {
	base := strings.TrimSuffix(filepath.ToSlash(dir), "/")
	for _, line := range strings.Split(content, "\n") {
		if rule, ok := parseIgnoreLine(strings.TrimSuffix(line, "\r"), base); ok {
			r.rules = append(r.rules, rule)
		}
	}
}

// Len is the number of rules.
func (r *IgnoreRules) Len() int {
	if r == nil {
		return 0
	}
	return len(r.rules)
}

func parseIgnoreLine(line, base string) (ignoreRule, bool) {
	line = trimUnescapedSpaces(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ignoreRule{}, false
	}
	rule := ignoreRule{base: base}
	switch {
	case strings.HasPrefix(line, "!"):
		rule.negate = true
		line = line[1:]
	case strings.HasPrefix(line, `\#`), strings.HasPrefix(line, `\!`):
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimRight(line, "/")
	}
	// a slash, but a trailing one, anchors the rule to its file's directory
	anchored := strings.Contains(line, "/")
	line = strings.TrimPrefix(line, "/")
	if line == "" {
		return ignoreRule{}, false
	}
	if !anchored && !strings.HasPrefix(line, "**/") {
		line = "**/" + line
	}
	rule.glob = line
	return rule, true
}

func trimUnescapedSpaces(line string) string {
	end := len(line)
	for end > 0 && line[end-1] == ' ' {
		if end >= 2 && line[end-2] == '\\' {
			break
		}
		end--
	}
	return line[:end]
}

// Ignored reports whether path, a directory when isDir, is excluded.
func (r *IgnoreRules) Ignored(path string, isDir bool) bool {
	if r == nil {
		return false
	}
	path = filepath.ToSlash(path)
	ignored := false
	for _, rule := range r.rules {
		if rule.matches(path, isDir) {
			ignored = !rule.negate
		}
	}
	return ignored
}

func (rule ignoreRule) matches(path string, isDir bool) bool {
	rel, ok := strings.CutPrefix(path, rule.base+"/")
	if !ok || rel == "" {
		return false
	}
	if (!rule.dirOnly || isDir) && globMatch(rule.glob, rel) {
		return true
	}
	// everything under an excluded directory
	for i := range len(rel) {
		if rel[i] == '/' && globMatch(rule.glob, rel[:i]) {
			return true
		}
	}
	return false
}

func globMatch(glob, rel string) bool {
	ok, err := doublestar.Match(glob, rel)
	return err == nil && ok
}

// LoadIgnoreRules reads the ignore files applying to the entries of dir.
// Inside a git repository, those are the .gitignore files from the
// repository root down to dir and .git/info/exclude. The .ignore files of
// dir and its parents apply everywhere.
func LoadIgnoreRules(fsys afero.Fs, dir string) *IgnoreRules {
	var chain []string
	repo := ""
	for d := filepath.Clean(dir); ; {
		chain = append(chain, d)
		if ok, _ := afero.Exists(fsys, filepath.Join(d, ".git")); ok {
			repo = d
			break
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	rules := &IgnoreRules{}
	for i := len(chain) - 1; i >= 0; i-- {
		d := chain[i]
		if repo != "" {
			if d == repo {
				rules.addFile(fsys, filepath.Join(d, ".git", "info", "exclude"), d)
			}
			rules.addFile(fsys, filepath.Join(d, ".gitignore"), d)
		}
		rules.addFile(fsys, filepath.Join(d, ".ignore"), d)
	}
	logging.Debug().Str("dir", dir).Str("repo", repo).Int("rules", rules.Len()).Msg("ignore rules loaded")
	return rules
}

func (r *IgnoreRules) addFile(fsys afero.Fs, path, dir string) {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return
	}
	r.Add(string(content), dir)
}
