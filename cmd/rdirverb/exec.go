package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	apppkg "github.com/kk-code-lab/rdirverb/internal/app"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
)

func newExecCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <commands> [path]",
		Short: "Run ';' separated commands without opening the terminal UI",
		Example: `  rdirverb exec ':focus src;:print_tree'
  rdirverb exec ':select_last;:print_path' ~/projects`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(backgroundContext(cmd), os.Interrupt)
			defer stop()

			opts, closeLog, err := loadOptions(f, args[1:])
			if err != nil {
				return err
			}
			defer closeLog()
			opts.Clipboard = apppkg.SystemClipboard()
			opts.Screen = stdoutScreen()

			app, err := apppkg.Exec(ctx, opts, args[0])
			if err != nil {
				return err
			}
			return finish(cmd.OutOrStdout(), f, app)
		},
	}
}

// stdoutScreen sizes page moves after the terminal when there's one.
func stdoutScreen() statepkg.Screen {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return apppkg.DefaultScreen
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return apppkg.DefaultScreen
	}
	return statepkg.Screen{Width: width, Height: height}
}
