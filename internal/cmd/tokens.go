package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quill/internal/quill"
)

const tokensLong = `
Scan a quill file and export its tokens, along with any lexical
problems found, as a JSON, YAML or TOML document.

Every token and diagnostic carries its byte offsets along with the
1 indexed line and column it starts at.
`

// tokens returns the tokens subcommand.
func tokens() (*cli.Command, error) {
	var (
		options quill.TokensOptions
		flags   globals
	)

	return cli.New(
		"tokens",
		cli.Short("Export the tokens of a quill file"),
		cli.Long(tokensLong),
		cli.Arg(&options.File, "file", "Path to the .ql file, '-' for stdin"),
		cli.Flag(&options.Format, "format", 'f', "Export format, one of json, yaml or toml", cli.FlagDefault(quill.DefaultFormat)),
		cli.Flag(&flags.config, "config", 'c', "Path to a config file"),
		cli.Flag(&flags.debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app, err := flags.app(cmd)
			if err != nil {
				return err
			}

			return app.Tokens(ctx, options)
		}),
	)
}
