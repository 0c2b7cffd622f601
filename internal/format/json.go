package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// JSONExporter is an [Exporter] that writes a snippet table as a sorted,
// pretty-printed JSON document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter].
func (j JSONExporter) Export(w io.Writer, table *snippet.Table) error {
	out, err := snippet.Render(table)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)

	return err
}

// JSONImporter is an [Importer] that reads a JSON snippet file.
//
// Files in the expected shape are decoded directly, anything else goes through
// the lenient loader which coerces mismatched fields. Snippets with no usable
// prefix are an error unless Interactive is set, in which case the Prompter
// is asked to supply one.
type JSONImporter struct {
	Prompter    Prompter // Asked for missing prefixes, required when Interactive is true
	Interactive bool     // Whether missing prefixes may be fixed by the user
}

// Import implements [Importer] for [JSONImporter].
func (j JSONImporter) Import(r io.Reader) (*snippet.Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read JSON: %w", err)
	}

	if table, ok := LoadStrict(src); ok {
		return table, nil
	}

	table, deferred, err := LoadLenient(src)
	if err != nil {
		return nil, err
	}

	if len(deferred) == 0 {
		return table, nil
	}

	if !j.Interactive || j.Prompter == nil {
		names := make([]string, 0, len(deferred))
		for _, d := range deferred {
			names = append(names, fmt.Sprintf("%q", d.Name))
		}

		return nil, fmt.Errorf("%w: %s", snippet.ErrMissingPrefix, strings.Join(names, ", "))
	}

	if err := Resolve(table, deferred, j.Prompter); err != nil {
		return nil, err
	}

	return table, nil
}

// strictRecord is the exact shape of a well formed JSON snippet.
type strictRecord struct {
	Prefix      *string  `json:"prefix"`
	Description *string  `json:"description"`
	Body        []string `json:"body"`
}

// LoadStrict attempts to decode src as a JSON object of snippets in exactly
// the expected shape: a string prefix, an array of strings for the body and
// an optional string description.
//
// The boolean result reports whether the attempt succeeded, when it is false
// the caller should fall back to [LoadLenient].
func LoadStrict(src []byte) (*snippet.Table, bool) {
	// The ordered map's decoder is forgiving about what surrounds the object
	if !json.Valid(src) {
		return nil, false
	}

	raw := orderedmap.New[string, strictRecord]()
	if err := json.Unmarshal(src, raw); err != nil {
		return nil, false
	}

	table := snippet.NewTable()

	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Prefix == nil || pair.Value.Body == nil {
			return nil, false
		}

		table.Set(pair.Key, snippet.Record{
			Prefix:      snippet.Single(*pair.Value.Prefix),
			Body:        pair.Value.Body,
			Description: pair.Value.Description,
		})
	}

	return table, true
}

// LoadLenient decodes src as a JSON object of snippets, coercing fields that
// are not in the expected shape rather than failing.
//
// A bare string body becomes a single line. A description is kept only when it
// is a non-empty string. Snippets whose prefix is not a string are left out of
// the table and returned, in document order, as deferred records awaiting a
// prefix (see [Resolve]). A name that appears more than once keeps only its
// last occurrence.
//
// Source that is not a JSON object is an [snippet.ErrMalformedSource] error.
func LoadLenient(src []byte) (*snippet.Table, []snippet.Deferred, error) {
	entries, err := objectEntries(src)
	if err != nil {
		return nil, nil, err
	}

	table := snippet.NewTable()

	var deferred []snippet.Deferred

	for _, entry := range entries {
		record := snippet.Record{
			Body:        coerceBody(entry.value.Get("body")),
			Description: coerceDescription(entry.value.Get("description")),
		}

		// A repeated name replaces whatever came before it, deferred or not
		deferred = lo.Reject(deferred, func(d snippet.Deferred, _ int) bool {
			return d.Name == entry.name
		})

		prefix := entry.value.Get("prefix")
		if prefix.Type != gjson.String {
			deferred = append(deferred, snippet.Deferred{Name: entry.name, Record: record, Raw: prefix.Raw})
			continue
		}

		record.Prefix = snippet.Single(prefix.Str)
		table.Set(entry.name, record)
	}

	return table, deferred, nil
}

// Resolve asks the prompter for a prefix for each deferred record in turn,
// inserting the completed records into table.
//
// The user is shown the snippet and asked for a prefix, then asked to confirm
// it. Declining asks again. Any error from the prompter aborts the whole
// resolution.
func Resolve(table *snippet.Table, deferred []snippet.Deferred, prompter Prompter) error {
	for _, d := range deferred {
		detail, err := json.MarshalIndent(d.Record, "", "  ")
		if err != nil {
			return fmt.Errorf("could not display snippet %q: %w", d.Name, err)
		}

		title := fmt.Sprintf("Snippet %q has no prefix, enter one", d.Name)
		if d.Raw != "" {
			title = fmt.Sprintf("Snippet %q has prefix %s which is not a single string, enter one", d.Name, d.Raw)
		}

		for {
			prefix, err := prompter.Input(title, string(detail))
			if err != nil {
				return fmt.Errorf("could not get prefix for snippet %q: %w", d.Name, err)
			}

			if prefix == "" {
				continue
			}

			ok, err := prompter.Confirm(fmt.Sprintf("Use %q as the prefix for %q?", prefix, d.Name))
			if err != nil {
				return fmt.Errorf("could not confirm prefix for snippet %q: %w", d.Name, err)
			}

			if ok {
				record := d.Record
				record.Prefix = snippet.Single(prefix)
				table.Set(d.Name, record)

				break
			}
		}
	}

	return nil
}

// entry is a single top level member of a JSON snippet file.
type entry struct {
	name  string
	value gjson.Result
}

// objectEntries validates src as a JSON object of objects and returns its
// members in document order.
func objectEntries(src []byte) ([]entry, error) {
	if !gjson.ValidBytes(src) {
		return nil, fmt.Errorf("%w: invalid JSON", snippet.ErrMalformedSource)
	}

	root := gjson.ParseBytes(src)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object of snippets, got %s", snippet.ErrMalformedSource, root.Type)
	}

	var (
		entries []entry
		err     error
	)

	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			err = fmt.Errorf("%w: snippet %q is not an object", snippet.ErrMalformedSource, key.String())
			return false
		}

		entries = append(entries, entry{name: key.String(), value: value})

		return true
	})

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// coerceBody turns whatever is in a snippet's body field into lines, a bare
// value becomes one line and anything that is not a string becomes an empty line.
func coerceBody(body gjson.Result) []string {
	if !body.IsArray() {
		return []string{stringOrEmpty(body)}
	}

	items := body.Array()
	lines := make([]string, 0, len(items))

	for _, item := range items {
		lines = append(lines, stringOrEmpty(item))
	}

	return lines
}

// coerceDescription returns the description if it is a non-empty string, nil otherwise.
func coerceDescription(description gjson.Result) *string {
	if description.Type != gjson.String || description.Str == "" {
		return nil
	}

	s := description.Str

	return &s
}

func stringOrEmpty(value gjson.Result) string {
	if value.Type != gjson.String {
		return ""
	}

	return value.Str
}
