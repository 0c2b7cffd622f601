package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// MultiPrefixImporter is an [Importer] for JSON snippet files that mix single
// and multiple prefixes.
//
// Every prefix in the resulting table is a list: an array is kept (less any
// entries that are not strings) and a bare string becomes a list of one. Any
// other prefix, or an array left with no triggers, is an error naming the
// offending snippet.
type MultiPrefixImporter struct{}

// Import implements [Importer] for [MultiPrefixImporter].
func (m MultiPrefixImporter) Import(r io.Reader) (*snippet.Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read JSON: %w", err)
	}

	entries, err := objectEntries(src)
	if err != nil {
		return nil, err
	}

	table := snippet.NewTable()

	for _, entry := range entries {
		prefix, err := multiPrefix(entry.value.Get("prefix"))
		if err != nil {
			return nil, fmt.Errorf("failed on snippet %q: %w", entry.name, err)
		}

		table.Set(entry.name, snippet.Record{
			Prefix:      prefix,
			Body:        coerceBody(entry.value.Get("body")),
			Description: coerceDescription(entry.value.Get("description")),
		})
	}

	return table, nil
}

// multiPrefix coerces a prefix field into a list prefix.
func multiPrefix(prefix gjson.Result) (snippet.Prefix, error) {
	switch {
	case !prefix.Exists():
		return snippet.Prefix{}, snippet.ErrMissingPrefix
	case prefix.IsArray():
		triggers := lo.FilterMap(prefix.Array(), func(item gjson.Result, _ int) (string, bool) {
			return item.Str, item.Type == gjson.String
		})

		if len(triggers) == 0 {
			return snippet.Prefix{}, fmt.Errorf(
				"%w: prefix array has no string entries, got %s",
				snippet.ErrMalformedSource,
				prefix.Raw,
			)
		}

		return snippet.Multi(triggers...), nil
	case prefix.Type == gjson.String:
		return snippet.Multi(prefix.Str), nil
	default:
		return snippet.Prefix{}, fmt.Errorf(
			"%w: prefix must be a string or an array of strings, got %s",
			snippet.ErrMalformedSource,
			prefix.Raw,
		)
	}
}

// NeedsMultiPrefix reports whether err, returned from importing a JSON file,
// may be fixed by reading the file again with the [MultiPrefixImporter].
func NeedsMultiPrefix(err error) bool {
	return errors.Is(err, snippet.ErrMissingPrefix)
}
