// Package cmd implements tekton's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the tekton CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"tekton",
		cli.Short("Convert and sort editor snippet files"),
		cli.Long(rootLong),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Convert snipmate snippets to JSON", "tekton convert go.snippets go.json"),
		cli.Example("Convert JSON snippets back to snipmate", "tekton convert go.json go.snippets"),
		cli.Example("Name each converted snippet yourself", "tekton convert go.snippets go.json --interactive"),
		cli.Example("Sort a JSON snippet file in place", "tekton sort go.json"),
		cli.Example("Sort every JSON snippet file in a directory", "tekton sort ./snippets --recursive"),
		cli.Example("Check snippet files can be read", "tekton check ./snippets"),
		cli.SubCommands(convert, sort, check),
	)
}

const rootLong = `
Tekton converts editor snippets between the line oriented snipmate format
(.snippets) and the JSON format used by VSCode and friends (.json, .code-snippets).

Formats are inferred from file extensions. JSON snippets can also be exported
to YAML and TOML.

An optional config file (.tekton.toml in the current directory, or --config)
may set defaults for the command line flags.
`
