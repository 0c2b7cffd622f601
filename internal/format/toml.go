package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// tomlRecord is the TOML shape of a single snippet.
type tomlRecord struct {
	Prefix      any      `toml:"prefix,omitempty"`
	Body        []string `toml:"body"`
	Description *string  `toml:"description,omitempty"`
}

// TOMLExporter is an [Exporter] that writes a snippet table as a TOML document
// with one table per snippet, sorted by name.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter].
func (t TOMLExporter) Export(w io.Writer, table *snippet.Table) error {
	if table.Len() == 0 {
		return snippet.ErrEmptyInput
	}

	buf := &bytes.Buffer{}

	// TOML maps are unordered so each snippet is encoded on its own to keep
	// the sorted order
	for i, name := range table.SortedKeys() {
		if i > 0 {
			buf.WriteByte('\n')
		}

		record, _ := table.Get(name)

		encoder := toml.NewEncoder(buf)
		encoder.Indent = ""

		if err := encoder.Encode(map[string]tomlRecord{name: toTOML(record)}); err != nil {
			return fmt.Errorf("could not encode snippet %q as TOML: %w", name, err)
		}
	}

	_, err := buf.WriteTo(w)

	return err
}

func toTOML(record snippet.Record) tomlRecord {
	out := tomlRecord{
		Body:        record.Body,
		Description: record.Description,
	}

	if out.Body == nil {
		out.Body = []string{}
	}

	switch {
	case record.Prefix.IsList():
		out.Prefix = record.Prefix.Values()
	case !record.Prefix.IsZero():
		out.Prefix = record.Prefix.String()
	}

	return out
}
