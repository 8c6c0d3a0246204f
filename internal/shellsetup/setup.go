// Package shellsetup prints the shell function which launches rdirverb and
// moves the shell to the directory the application was left on.
package shellsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"text/template"
)

// ResultFileFlag is the flag through which the shell function gets the
// directory to cd to.
const ResultFileFlag = "result-file"

// ErrUnsupportedShell is returned for shells without a function template.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Config holds the environment lookups, replaced in tests.
type Config struct {
	GOOS         string
	Getenv       func(string) string
	DetectParent func() string
	// Executable is the path launched by the function, os.Executable by
	// default.
	Executable string
}

func (c Config) withDefaults() Config {
	if c.GOOS == "" {
		c.GOOS = runtime.GOOS
	}
	if c.Getenv == nil {
		c.Getenv = os.Getenv
	}
	if c.DetectParent == nil {
		c.DetectParent = ParentShellName
	}
	if c.Executable == "" {
		exe, err := os.Executable()
		if err != nil {
			exe = "rdirverb"
		}
		c.Executable = exe
	}
	return c
}

type shellScript struct {
	quote func(string) string
	body  *template.Template
}

var posixScript = shellScript{
	quote: quotePosix,
	body: template.Must(template.New("posix").Parse(`rdirverb() {
    rdirverb_result=$(mktemp "${TMPDIR:-/tmp}/rdirverb.XXXXXX") || return 1
    command {{.Exe}} --{{.Flag}} "$rdirverb_result" "$@"
    rdirverb_code=$?
    rdirverb_dest=$(cat "$rdirverb_result" 2>/dev/null)
    rm -f "$rdirverb_result"
    if [ -n "$rdirverb_dest" ] && [ -d "$rdirverb_dest" ]; then
        cd -- "$rdirverb_dest" || rdirverb_code=1
    fi
    unset rdirverb_result rdirverb_dest
    return $rdirverb_code
}
`)),
}

var scripts = map[string]shellScript{
	"bash": posixScript,
	"zsh":  posixScript,
	"sh":   posixScript,
	"ksh":  posixScript,
	"dash": posixScript,
	"fish": {
		quote: quoteFish,
		body: template.Must(template.New("fish").Parse(`function rdirverb
    set -l result (mktemp)
    or return 1
    command {{.Exe}} --{{.Flag}} $result $argv
    set -l code $status
    set -l dest (cat $result 2>/dev/null)
    rm -f $result
    if test -n "$dest" -a -d "$dest"
        builtin cd $dest
    end
    return $code
end
`)),
	},
	"pwsh": {
		quote: quotePowerShell,
		body: template.Must(template.New("pwsh").Parse(`function rdirverb {
    $result = [System.IO.Path]::GetTempFileName()
    try {
        & {{.Exe}} --{{.Flag}} $result @args
        $dest = Get-Content -Raw -ErrorAction SilentlyContinue $result
        if ($dest) {
            $dest = $dest.Trim()
            if (Test-Path -LiteralPath $dest -PathType Container) {
                Set-Location -LiteralPath $dest
            }
        }
    } finally {
        Remove-Item -ErrorAction SilentlyContinue $result
    }
}
`)),
	},
}

// Script returns the function for shell, detected when empty.
func Script(shell string, cfg Config) (string, error) {
	cfg = cfg.withDefaults()
	name := ShellName(shell)
	if name == "" {
		name = detectShell(cfg)
	}
	script, ok := scripts[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedShell, name)
	}
	var b strings.Builder
	err := script.body.Execute(&b, struct{ Exe, Flag string }{
		Exe:  script.quote(cfg.Executable),
		Flag: ResultFileFlag,
	})
	return b.String(), err
}

// Print writes the function for shell to w.
func Print(w io.Writer, shell string, cfg Config) error {
	script, err := Script(shell, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

func detectShell(cfg Config) string {
	if shell := ShellName(cfg.Getenv("SHELL")); shell != "" {
		return shell
	}
	if shell := ShellName(cfg.DetectParent()); shell != "" {
		return shell
	}
	if strings.EqualFold(cfg.GOOS, "windows") {
		return "pwsh"
	}
	return "bash"
}

// ShellName reduces a shell path or command line to the shell's name,
// e.g. `"C:\Program Files\PowerShell\pwsh.exe" -NoLogo` to pwsh.
func ShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if q := value[0]; q == '"' || q == '\'' {
		value = value[1:]
		if end := strings.IndexByte(value, q); end >= 0 {
			value = value[:end]
		}
	} else if end := strings.IndexAny(value, " \t"); end >= 0 {
		value = value[:end]
	}
	name := strings.ToLower(path.Base(strings.ReplaceAll(value, `\`, "/")))
	name = strings.TrimPrefix(strings.TrimSuffix(name, ".exe"), "-")
	if name == "powershell" {
		return "pwsh"
	}
	return name
}

func quotePosix(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func quotePowerShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
