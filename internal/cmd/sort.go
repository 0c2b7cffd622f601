package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/tekton/internal/config"
	"go.followtheprocess.codes/tekton/internal/tekton"
)

const sortLong = `
Sorts the snippets in a JSON snippet file by name, ignoring case, rewriting
the file in place.

If path is a directory, '--recursive' must be passed and every JSON snippet
file beneath it is sorted. Hidden directories are skipped.

Files that cannot be sorted are reported at the end and left untouched, pass
'--fail-fast' to stop at the first one instead. With '--interactive' you will be
asked to supply any missing prefixes, and files mixing single and multiple
prefixes are retried with every prefix converted to a list.
`

// sort returns the sort subcommand.
func sort() (*cli.Command, error) {
	var options tekton.SortOptions

	return cli.New(
		"sort",
		cli.Short("Sort JSON snippet files by snippet name"),
		cli.Long(sortLong),
		cli.Arg(&options.Path, "path", "Path to sort, may be directory or file"),
		cli.Flag(&options.Recursive, "recursive", 'r', "Sort every JSON snippet file under a directory"),
		cli.Flag(&options.Interactive, "interactive", 'i', "Fix missing prefixes interactively"),
		cli.Flag(&options.FailFast, "fail-fast", flag.NoShortHand, "Stop at the first file that cannot be sorted"),
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
			return app.Sort(ctx, options)
		}),
	)
}
