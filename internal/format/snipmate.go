package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.followtheprocess.codes/tekton/internal/snippet"
	"go.followtheprocess.codes/tekton/internal/syntax/parser"
)

// SnipmateImporter is an [Importer] that reads snipmate line format files.
//
// Each snippet is keyed by its default name ("snippet <prefix>") unless a
// Prompter is set, in which case the user is shown each snippet and asked to
// name it. A blank answer keeps the default name.
type SnipmateImporter struct {
	Prompter Prompter // Optional, asked to name each snippet
	Name     string   // Name of the file being imported, used in diagnostics
}

// Import implements [Importer] for [SnipmateImporter].
func (s SnipmateImporter) Import(r io.Reader) (*snippet.Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read snippets: %w", err)
	}

	name := s.Name
	if name == "" {
		name = "stdin"
	}

	p := parser.New(name, src)

	records, err := p.Parse()
	if err != nil {
		diagnostics := p.Diagnostics()
		reasons := make([]string, 0, len(diagnostics))

		for _, diag := range diagnostics {
			reasons = append(reasons, diag.String())
		}

		return nil, fmt.Errorf("%w: %s", err, strings.Join(reasons, "; "))
	}

	table := snippet.NewTable()

	for _, line := range records {
		key, record := line.Record()

		if s.Prompter != nil {
			key, err = s.name(key, record)
			if err != nil {
				return nil, err
			}
		}

		table.Set(key, record)
	}

	return table, nil
}

// name asks the prompter what to call record, an empty answer keeps fallback.
func (s SnipmateImporter) name(fallback string, record snippet.Record) (string, error) {
	detail, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not display snippet %q: %w", fallback, err)
	}

	key, err := s.Prompter.Input(fmt.Sprintf("Enter a name for %q", fallback), string(detail))
	if err != nil {
		return "", fmt.Errorf("could not get a name for snippet %q: %w", fallback, err)
	}

	if key = strings.TrimSpace(key); key == "" {
		return fallback, nil
	}

	return key, nil
}

// SnipmateExporter is an [Exporter] that writes a snippet table in the snipmate
// line format, sorted by name.
type SnipmateExporter struct{}

// Export implements [Exporter] for [SnipmateExporter].
func (s SnipmateExporter) Export(w io.Writer, table *snippet.Table) error {
	for _, name := range table.Keys() {
		record, _ := table.Get(name)
		if len(record.Prefix.Values()) == 0 {
			return fmt.Errorf("%w: snippet %q", snippet.ErrMissingPrefix, name)
		}
	}

	out, err := snippet.RenderLines(table)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)

	return err
}
