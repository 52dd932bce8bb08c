package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/quill/internal/quill"
)

// ast returns the ast subcommand.
func ast() (*cli.Command, error) {
	var (
		options quill.ASTOptions
		flags   globals
	)

	return cli.New(
		"ast",
		cli.Short("Print the syntax tree of a quill file"),
		cli.Arg(&options.File, "file", "Path to the .ql file, '-' for stdin"),
		cli.Flag(&flags.config, "config", 'c', "Path to a config file"),
		cli.Flag(&flags.noColor, "no-color", flag.NoShortHand, "Disable coloured output"),
		cli.Flag(&flags.debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := flags.app(cmd)
			if err != nil {
				return err
			}

			return app.AST(ctx, options)
		}),
	)
}
