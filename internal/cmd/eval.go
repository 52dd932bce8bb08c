package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/quill/internal/quill"
)

const evalLong = `
Evaluate every statement in a quill file, or the text given with '--expr',
and print the value of each on its own line.

Pass '-' as the file to read from stdin.

Nothing is evaluated if the source has any syntax errors, they are reported
instead.
`

// eval returns the eval subcommand.
func eval() (*cli.Command, error) {
	var (
		options quill.EvalOptions
		flags   globals
	)

	return cli.New(
		"eval",
		cli.Short("Evaluate quill arithmetic"),
		cli.Long(evalLong),
		cli.Arg(&options.File, "file", "Path to the .ql file", cli.ArgDefault("")),
		cli.Flag(&options.Expr, "expr", 'e', "Source text to evaluate instead of a file"),
		cli.Flag(&flags.config, "config", 'c', "Path to a config file"),
		cli.Flag(&flags.noColor, "no-color", flag.NoShortHand, "Disable coloured output"),
		cli.Flag(&flags.debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := flags.app(cmd)
			if err != nil {
				return err
			}

			return app.Eval(ctx, options)
		}),
	)
}
