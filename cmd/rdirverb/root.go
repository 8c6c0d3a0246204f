package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/rdirverb/internal/app"
	"github.com/kk-code-lab/rdirverb/internal/conf"
	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
	"github.com/kk-code-lab/rdirverb/internal/logging"
	"github.com/kk-code-lab/rdirverb/internal/shellsetup"
)

// setupAuto is the value of a bare --setup.
const setupAuto = "auto"

type rootFlags struct {
	confPath   string
	commands   string
	logLevel   string
	logFile    string
	setup      string
	resultFile string
	verbOutput string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "rdirverb [path]",
		Short: "Browse directories and act on them with verbs",
		Long: `rdirverb lists a directory and lets you navigate and act on it with
verbs typed after ':' or bound to keys.

Run 'rdirverb --setup' to print the shell function which moves your shell
to the directory you leave rdirverb on.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.setup != "" {
				return printSetup(cmd.OutOrStdout(), f.setup)
			}
			return runTerminal(cmd, f, args)
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&f.confPath, "conf", "c", "", "configuration file (default: user config dir)")
	persistent.StringVar(&f.logLevel, "log-level", "", "log level (DEBUG|INFO|WARN|ERROR|OFF)")
	persistent.StringVar(&f.logFile, "log-file", "", "file the logs are appended to")
	persistent.StringVar(&f.verbOutput, "verb-output", "", "file receiving the lines of write_output")

	flags := cmd.Flags()
	flags.StringVar(&f.commands, "cmd", "", "';' separated commands run at startup")
	flags.StringVarP(&f.setup, "setup", "s", "", "print the shell integration, --setup=SHELL to choose the shell")
	flags.Lookup("setup").NoOptDefVal = setupAuto
	flags.StringVar(&f.resultFile, shellsetup.ResultFileFlag, "", "file receiving the directory to cd to")
	_ = flags.MarkHidden(shellsetup.ResultFileFlag)

	cmd.AddCommand(newExecCmd(f))
	return cmd
}

func printSetup(w io.Writer, shell string) error {
	if shell == setupAuto {
		shell = ""
	}
	return shellsetup.Print(w, shell, shellsetup.Config{})
}

func runTerminal(cmd *cobra.Command, f *rootFlags, args []string) error {
	ctx, stop := signal.NotifyContext(backgroundContext(cmd), os.Interrupt)
	defer stop()

	opts, closeLog, err := loadOptions(f, args)
	if err != nil {
		return err
	}
	defer closeLog()
	opts.Clipboard = apppkg.SystemClipboard()

	app, err := apppkg.RunTerminal(ctx, opts, f.commands)
	if err != nil {
		return err
	}
	if err := writeResultFile(f.resultFile, app.CurrentRoot()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return finish(cmd.OutOrStdout(), f, app)
}

// loadOptions reads the configuration and starts logging. The returned
// function closes the log file.
func loadOptions(f *rootFlags, args []string) (apppkg.Options, func(), error) {
	closeLog := func() {}
	path := f.confPath
	if path == "" {
		var err error
		if path, err = conf.DefaultPath(); err != nil {
			logging.Debug().Err(err).Msg("no default configuration")
		}
	}
	cfg, err := conf.Load(path)
	if err != nil {
		return apppkg.Options{}, closeLog, err
	}

	level := cfg.Logger.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	logFile := cfg.Logger.File
	if f.logFile != "" {
		logFile = f.logFile
	}
	if logFile != "" {
		closer, err := logging.OpenFile(logFile, logging.ParseLevel(level))
		if err != nil {
			return apppkg.Options{}, closeLog, err
		}
		closeLog = func() { _ = closer.Close() }
	}

	store, errs := cfg.BuildStore()
	if len(errs) > 0 {
		logging.Warn().Int("count", len(errs)).Msg("some configured verbs were skipped")
	}
	treeOptions, err := cfg.TreeOptions()
	if err != nil {
		closeLog()
		return apppkg.Options{}, func() {}, err
	}

	root := ""
	if len(args) > 0 {
		if root, err = filepath.Abs(args[0]); err != nil {
			closeLog()
			return apppkg.Options{}, func() {}, err
		}
	}
	return apppkg.Options{
		Root:        root,
		Store:       store,
		TreeOptions: treeOptions,
		SyntaxTheme: cfg.SyntaxTheme,
	}, closeLog, nil
}

// finish prints what the print verbs produced and writes the verb output.
func finish(stdout io.Writer, f *rootFlags, app *apppkg.Application) error {
	if output := app.Output(); output != "" {
		if _, err := fmt.Fprintln(stdout, output); err != nil {
			return err
		}
	}
	if f.verbOutput == "" {
		return nil
	}
	var content string
	if lines := app.VerbOutput(); len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(f.verbOutput, []byte(content), 0o600); err != nil {
		return fmt.Errorf("cannot write verb output: %w", err)
	}
	return nil
}

// writeResultFile tells the shell function where to cd.
func writeResultFile(path, root string) error {
	if path == "" {
		return nil
	}
	dir := fsutil.ClosestDir(root)
	if dir == "" {
		return errors.New("no directory to return to")
	}
	if err := os.WriteFile(path, []byte(dir), 0o600); err != nil {
		return fmt.Errorf("could not write result file: %w", err)
	}
	return nil
}

// backgroundContext is the context of commands run without cobra, in tests.
func backgroundContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
