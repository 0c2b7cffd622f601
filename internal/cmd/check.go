package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/tekton/internal/tekton"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a snippet file, then this file alone is checked.

If it is a directory, this directory is scanned recursively for all
snipmate and JSON snippet files and every one is checked.

Check never asks questions and never writes anything, it reports whether
tekton can read each file as it is.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options tekton.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check snippet files can be read"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := tekton.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, options)
		}),
	)
}
