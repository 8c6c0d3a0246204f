package app

import "context"

// Exec builds a headless application and runs `;` separated commands on
// it. The application is returned, even on error, to read its state and
// output.
func Exec(ctx context.Context, opts Options, commands string) (*Application, error) {
	app, err := New(ctx, opts)
	if err != nil {
		return nil, err
	}
	return app, app.RunCommands(commands)
}
