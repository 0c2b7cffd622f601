// Package format provides mechanisms for reading and writing snippet collections
// in the file formats tekton understands.
//
// Notably, the package provides the [Importer] and [Exporter] interfaces for doing this
// in a format-agnostic way, and [Detect] for working out which format a file is in.
//
// It also provides the built in importers and exporters: JSON (strict, lenient and
// multi-prefix), snipmate, YAML and TOML.
package format

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// Kind is the kind of a snippet file.
type Kind int

const (
	KindUnknown Kind = iota
	KindSnipmate
	KindJSON
	KindYAML
	KindTOML
)

// String implements [fmt.Stringer] for a [Kind].
func (k Kind) String() string {
	switch k {
	case KindSnipmate:
		return "snipmate"
	case KindJSON:
		return "json"
	case KindYAML:
		return "yaml"
	case KindTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Detect returns the [Kind] of the file at path.
//
// The extension is consulted first, failing that an existing file has its
// content sniffed so that JSON snippet files with an unusual name still work.
func Detect(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".snippets", ".snippet":
		return KindSnipmate
	case ".json", ".code-snippets":
		return KindJSON
	case ".yaml", ".yml":
		return KindYAML
	case ".toml":
		return KindTOML
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return KindUnknown
	}

	if mime.Is("application/json") {
		return KindJSON
	}

	return KindUnknown
}

// Exporter is the interface defining a mechanism for writing a snippet
// table in an external format.
type Exporter interface {
	// Export exports the [snippet.Table] into an external format, written to w.
	Export(w io.Writer, table *snippet.Table) error
}

// Importer is the interface defining a mechanism for reading a snippet
// table from an external format.
type Importer interface {
	// Import imports the data from the external format into a [snippet.Table].
	Import(r io.Reader) (*snippet.Table, error)
}

// Prompter is the interface to a user who can fill in information missing
// from a snippet file.
type Prompter interface {
	// Input asks the user for a line of text, title is the question and detail
	// is any context that helps answer it (e.g. the snippet in question).
	Input(title, detail string) (string, error)

	// Confirm asks the user a yes/no question.
	Confirm(title string) (bool, error)
}
