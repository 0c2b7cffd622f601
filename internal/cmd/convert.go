package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/tekton/internal/config"
	"go.followtheprocess.codes/tekton/internal/tekton"
)

const convertLong = `
The formats of input and output are inferred from their extensions:

  .snippets, .snippet     snipmate
  .json, .code-snippets   JSON
  .yaml, .yml             YAML (output only)
  .toml                   TOML (output only)

Snipmate snippets are named "snippet <prefix>" in the JSON output unless
'--interactive' is passed, in which case you will be asked to name each one.

JSON snippets missing a prefix are an error, unless '--interactive' is passed
in which case you will be asked to supply one.

The output is always sorted by snippet name, ignoring case.
`

// convert returns the convert subcommand.
func convert() (*cli.Command, error) {
	var options tekton.ConvertOptions

	return cli.New(
		"convert",
		cli.Short("Convert snippets from one format to another"),
		cli.Long(convertLong),
		cli.Arg(&options.Input, "input", "Path to the snippet file to convert"),
		cli.Arg(&options.Output, "output", "Path to write the converted snippets to"),
		cli.Flag(&options.Interactive, "interactive", 'i', "Name snippets and fix missing prefixes interactively"),
		cli.Flag(&options.Stdout, "stdout", flag.NoShortHand, "Write the converted snippets to stdout"),
		cli.Flag(
			&options.Config,
			"config",
			'c',
			"Path to the tekton config file",
			cli.FlagDefault(config.DefaultFile),
		),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := tekton.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Convert(ctx, options)
		}),
	)
}
