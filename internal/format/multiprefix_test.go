package format_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/snippet"
	"go.followtheprocess.codes/test"
)

func TestMultiPrefixImporter(t *testing.T) {
	src := `{
		"single": {"prefix": "one", "body": ["x"]},
		"double": {"prefix": ["one", "two"], "body": "y", "description": "twice"},
		"mixed": {"prefix": ["a", 1, null, "b"], "body": ["z"]}
	}`

	table, err := format.MultiPrefixImporter{}.Import(strings.NewReader(src))
	test.Ok(t, err)
	test.Equal(t, table.Len(), 3)

	tests := []struct {
		name   string   // Snippet to look up
		prefix []string // Expected prefix values
	}{
		{name: "single", prefix: []string{"one"}},
		{name: "double", prefix: []string{"one", "two"}},
		{name: "mixed", prefix: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, ok := table.Get(tt.name)
			test.True(t, ok)
			test.True(t, record.Prefix.IsList(), test.Context("every prefix should be a list"))
			test.EqualFunc(t, record.Prefix.Values(), tt.prefix, slices.Equal[[]string])
		})
	}

	double, _ := table.Get("double")
	test.EqualFunc(t, double.Body, []string{"y"}, slices.Equal[[]string])
	test.True(t, double.Description != nil)
	test.Equal(t, *double.Description, "twice")
}

func TestMultiPrefixImporterErrors(t *testing.T) {
	tests := []struct {
		want error  // Expected sentinel
		name string // Name of the test case
		src  string // JSON source
	}{
		{
			name: "number prefix",
			src:  `{"good": {"prefix": "g", "body": []}, "bad one": {"prefix": 42, "body": []}}`,
			want: snippet.ErrMalformedSource,
		},
		{
			name: "object prefix",
			src:  `{"bad one": {"prefix": {"a": 1}, "body": []}}`,
			want: snippet.ErrMalformedSource,
		},
		{
			name: "empty prefix array",
			src:  `{"bad one": {"prefix": [], "body": ["x"]}}`,
			want: snippet.ErrMalformedSource,
		},
		{
			name: "no string triggers",
			src:  `{"bad one": {"prefix": [1, 2], "body": ["y"]}}`,
			want: snippet.ErrMalformedSource,
		},
		{
			name: "missing prefix",
			src:  `{"bad one": {"body": []}}`,
			want: snippet.ErrMissingPrefix,
		},
		{
			name: "invalid json",
			src:  `{"bad one": `,
			want: snippet.ErrMalformedSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := format.MultiPrefixImporter{}.Import(strings.NewReader(tt.src))
			test.Err(t, err)
			test.True(t, errors.Is(err, tt.want), test.Context("got %v", err))
		})
	}
}

func TestMultiPrefixErrorNamesSnippet(t *testing.T) {
	_, err := format.MultiPrefixImporter{}.Import(strings.NewReader(`{"bad one": {"prefix": true, "body": []}}`))
	test.Err(t, err)
	test.True(t, strings.HasPrefix(err.Error(), `failed on snippet "bad one": `), test.Context("got %v", err))
}

func TestMultiPrefixEmptyArrayNamesSnippet(t *testing.T) {
	_, err := format.MultiPrefixImporter{}.Import(strings.NewReader(`{"good": {"prefix": "g", "body": []}, "empty": {"prefix": [], "body": []}}`))
	test.Err(t, err)
	test.True(t, strings.HasPrefix(err.Error(), `failed on snippet "empty": `), test.Context("got %v", err))
}

func TestNeedsMultiPrefix(t *testing.T) {
	test.True(t, format.NeedsMultiPrefix(snippet.ErrMissingPrefix))
	test.False(t, format.NeedsMultiPrefix(snippet.ErrMalformedSource))
	test.False(t, format.NeedsMultiPrefix(nil))
}
