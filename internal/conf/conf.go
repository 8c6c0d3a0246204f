// Package conf loads the TOML configuration: verb definitions, key
// bindings, default tree flags and logger settings.
package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kk-code-lab/rdirverb/internal/logging"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	"github.com/kk-code-lab/rdirverb/internal/verb"
)

const (
	// AppName is the directory name under the user config directory.
	AppName = "rdirverb"
	// FileName is the name of the configuration file.
	FileName = "conf.toml"
)

// Config is the decoded configuration file.
type Config struct {
	// DefaultFlags are applied to every new tree, e.g. "h" to show hidden files.
	DefaultFlags string     `toml:"default_flags"`
	SyntaxTheme  string     `toml:"syntax_theme"`
	Verbs        []VerbConf `toml:"verbs"`
	Logger       LoggerConf `toml:"logger"`
}

// VerbConf is one [[verbs]] entry.
type VerbConf struct {
	Invocation  string   `toml:"invocation"`
	Key         string   `toml:"key"`
	Keys        []string `toml:"keys"`
	Internal    string   `toml:"internal"`
	Execution   string   `toml:"execution"`
	Description string   `toml:"description"`
}

// LoggerConf holds the [logger] table.
type LoggerConf struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used without file.
func Default() Config {
	return Config{
		Logger: LoggerConf{Level: "info"},
	}
}

// DefaultPath returns the configuration path under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate config directory: %w", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logging.Debug().Str("path", path).Msg("config file not found")
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logging.Warn().Str("path", path).Interface("keys", undecoded).Msg("unrecognized config keys")
	}
	cfg.validate()
	return cfg, nil
}

// Parse decodes configuration text, mostly for tests.
func Parse(text string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.validate()
	return cfg, nil
}

func (c *Config) validate() {
	if c.Logger.Level == "" {
		c.Logger.Level = Default().Logger.Level
	}
	if c.SyntaxTheme != "" && !verb.IsSyntaxTheme(c.SyntaxTheme) {
		logging.Warn().Str("theme", c.SyntaxTheme).Msg("unknown syntax theme ignored")
		c.SyntaxTheme = ""
	}
}

// TreeOptions returns the default tree options with DefaultFlags applied.
func (c Config) TreeOptions() (statepkg.TreeOptions, error) {
	options := statepkg.DefaultTreeOptions()
	if c.DefaultFlags == "" {
		return options, nil
	}
	if err := options.ApplyFlags(c.DefaultFlags); err != nil {
		return statepkg.DefaultTreeOptions(), fmt.Errorf("invalid default_flags: %w", err)
	}
	return options, nil
}

// BuildStore returns the verb store with the configured verbs added to the
// built-in ones. An invalid verb entry is skipped and reported; the others
// are still registered.
func (c Config) BuildStore() (*verb.Store, []error) {
	store := verb.NewStore()
	var errs []error
	for i, vc := range c.Verbs {
		v, err := vc.build()
		if err != nil {
			err = fmt.Errorf("verb #%d: %w", i+1, err)
			logging.Warn().Err(err).Msg("skipping verb definition")
			errs = append(errs, err)
			continue
		}
		store.Add(v)
	}
	return store, errs
}

func (vc VerbConf) build() (*verb.Verb, error) {
	exec, err := vc.execution()
	if err != nil {
		return nil, err
	}

	keys := vc.Keys
	if vc.Key != "" {
		keys = append([]string{vc.Key}, keys...)
	}
	if vc.Invocation == "" && len(keys) == 0 {
		return nil, fmt.Errorf("a verb needs an invocation or a key")
	}

	v, err := verb.NewVerb(vc.Invocation, exec)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		normalized, err := verb.NormalizeKey(key)
		if err != nil {
			return nil, err
		}
		v.WithKeys(normalized)
	}
	return v.WithDescription(vc.Description), nil
}

func (vc VerbConf) execution() (verb.InternalExecution, error) {
	switch {
	case vc.Internal != "" && vc.Execution != "":
		return verb.InternalExecution{}, fmt.Errorf("internal and execution are exclusive")
	case vc.Internal != "":
		return verb.ParseInternalExecution(vc.Internal)
	case strings.HasPrefix(vc.Execution, ":"):
		return verb.ParseInternalExecution(vc.Execution)
	case vc.Execution != "":
		return verb.InternalExecution{}, fmt.Errorf("external execution %q is not supported", vc.Execution)
	default:
		return verb.InternalExecution{}, fmt.Errorf("missing internal or execution")
	}
}
