package snippet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// indent is the indentation used for rendered JSON.
const indent = "  "

// Render renders the table as a single pretty-printed JSON object with the
// snippets ordered by [CompareNames].
//
// An empty table is an [ErrEmptyInput] error, never an empty object.
func Render(table *Table) (string, error) {
	if table.Len() == 0 {
		return "", ErrEmptyInput
	}

	compact := &bytes.Buffer{}
	compact.WriteByte('{')

	for i, name := range table.SortedKeys() {
		if i > 0 {
			compact.WriteByte(',')
		}

		key, err := marshal(name)
		if err != nil {
			return "", fmt.Errorf("could not encode snippet name %q: %w", name, err)
		}

		record, _ := table.Get(name)

		value, err := marshal(record)
		if err != nil {
			return "", fmt.Errorf("could not encode snippet %q: %w", name, err)
		}

		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}

	compact.WriteByte('}')

	out := &bytes.Buffer{}
	if err := json.Indent(out, compact.Bytes(), "", indent); err != nil {
		return "", fmt.Errorf("could not format JSON: %w", err)
	}

	out.WriteByte('\n')

	return out.String(), nil
}

// RenderLines renders the table in line format, snippets are ordered by
// [CompareNames] and a record with more than one prefix produces one line
// format snippet per prefix.
//
// An empty table, or one where no record has a trigger, is an [ErrEmptyInput] error.
func RenderLines(table *Table) (string, error) {
	if table.Len() == 0 {
		return "", ErrEmptyInput
	}

	s := &strings.Builder{}

	for _, name := range table.SortedKeys() {
		record, _ := table.Get(name)
		s.WriteString(FormatLine(record))
	}

	// Records without a trigger have no line format, if that was all of them
	// there is nothing to write
	if s.Len() == 0 {
		return "", ErrEmptyInput
	}

	return s.String(), nil
}

// FormatLine renders a single record in line format.
func FormatLine(record Record) string {
	s := &strings.Builder{}
	for _, line := range record.Lines() {
		s.WriteString(line.String())
	}

	return s.String()
}
