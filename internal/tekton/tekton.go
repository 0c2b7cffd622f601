// Package tekton implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package tekton

import (
	"io"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/prompt"
)

// Styles.
const (
	// fileStyle is the style used for file names in status messages.
	fileStyle = hue.Bold

	// countStyle is the style used for snippet and file counts.
	countStyle = hue.Green | hue.Bold
)

// Tekton represents the tekton program.
type Tekton struct {
	stdout   io.Writer       // Normal program output is written here
	stderr   io.Writer       // Logs, errors and interactive prompts are written here
	prompter format.Prompter // Asks the user to fill in missing snippet details
	logger   *log.Logger     // The logger for the application
	version  string          // The tekton version
}

// New returns a new [Tekton].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Tekton {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level), log.Prefix("tekton"))

	return Tekton{
		stdout:   stdout,
		stderr:   stderr,
		prompter: prompt.New(stdin, stderr),
		logger:   logger,
		version:  version,
	}
}
