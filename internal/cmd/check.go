package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/quill/internal/quill"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a .ql file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with the '.ql' extension and any matching files will be validated.

Every problem found is reported with the offending line and a pointer
to the exact span, the command fails if there are any.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var (
		options quill.CheckOptions
		flags   globals
	)

	return cli.New(
		"check",
		cli.Short("Check quill files for syntax errors"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&flags.config, "config", 'c', "Path to a config file"),
		cli.Flag(&flags.noColor, "no-color", flag.NoShortHand, "Disable coloured output"),
		cli.Flag(&flags.debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := flags.app(cmd)
			if err != nil {
				return err
			}

			return app.Check(ctx, options)
		}),
	)
}
