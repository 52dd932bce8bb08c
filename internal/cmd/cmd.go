// Package cmd implements quill's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/quill/internal/config"
	"go.followtheprocess.codes/quill/internal/quill"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the quill CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"quill",
		cli.Short("A front end for the quill expression language"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Check for syntax errors in a file", "quill check ./sums.ql"),
		cli.Example("Check for syntax errors in multiple files (recursively)", "quill check ./examples"),
		cli.Example("Evaluate an expression", "quill eval --expr '(1 + 2) * 3'"),
		cli.Example("Print the syntax tree of a file", "quill ast ./sums.ql"),
		cli.Example("Export the tokens of a file as YAML", "quill tokens ./sums.ql --format yaml"),
		cli.SubCommands(check, eval, ast, tokens),
	)
}

// globals are the flags shared by every subcommand.
type globals struct {
	config  string // Path to an explicit config file
	debug   bool   // Enable debug logging
	noColor bool   // Disable coloured output
}

// app loads the configuration and returns the [quill.Quill] for cmd.
func (g globals) app(cmd *cli.Command) (quill.Quill, error) {
	cfg, err := config.Load(g.config)
	if err != nil {
		return quill.Quill{}, err
	}

	if g.noColor {
		cfg.Render.Color = false
	}

	return quill.New(g.debug, version, cfg, cmd.Stdin(), cmd.Stdout(), cmd.Stderr()), nil
}
