package tekton_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/snippet"
	"go.followtheprocess.codes/tekton/internal/tekton"
	"go.followtheprocess.codes/test"
)

// write creates a file called name in dir with the given content, returning its path.
func write(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	test.Ok(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// read returns the content of the file at path.
func read(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	test.Ok(t, err)

	return string(content)
}

func TestConvertSnipmateToJSON(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "go.snippets", "snippet test\n   test snippet\nsnippet test2 an epic description\n\tfmt.Println()\n")
	output := filepath.Join(dir, "go.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := tekton.New(false, "test", strings.NewReader(""), stdout, stderr)
	test.Ok(t, app.Convert(t.Context(), tekton.ConvertOptions{Input: input, Output: output}))

	want := `{
  "snippet test": {
    "prefix": "test",
    "body": [
      "test snippet"
    ]
  },
  "snippet test2": {
    "prefix": "test2",
    "body": [
      "fmt.Println()"
    ],
    "description": "an epic description"
  }
}
`
	test.Diff(t, read(t, output), want)
	test.True(t, strings.Contains(stdout.String(), "Converted"), test.Context("stdout: %s", stdout.String()))
	test.Equal(t, stderr.String(), "")
}

func TestConvertInteractiveNaming(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "go.snippets", "snippet a\n\tx\nsnippet b\n\ty\n")
	output := filepath.Join(dir, "go.json")

	stdin := strings.NewReader("Alpha\nBeta\n")

	app := tekton.New(false, "test", stdin, &bytes.Buffer{}, &bytes.Buffer{})
	err := app.Convert(t.Context(), tekton.ConvertOptions{Input: input, Output: output, Interactive: true})
	test.Ok(t, err)

	table, err := format.JSONImporter{}.Import(strings.NewReader(read(t, output)))
	test.Ok(t, err)

	test.EqualFunc(t, table.Keys(), []string{"Alpha", "Beta"}, slices.Equal[[]string])
}

func TestConvertJSONToSnipmate(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "go.json", `{
		"Print": {"prefix": ["pr", "print"], "body": ["fmt.Println($0)"]},
		"Func": {"prefix": "fn", "body": ["func $1() {", "\t$0", "}"], "description": "a function"}
	}`)

	stdout := &bytes.Buffer{}

	app := tekton.New(false, "test", strings.NewReader(""), stdout, &bytes.Buffer{})
	err := app.Convert(t.Context(), tekton.ConvertOptions{Input: input, Output: filepath.Join(dir, "go.snippets"), Stdout: true})
	test.Ok(t, err)

	want := "snippet fn a function\n\tfunc $1() {\n\t\t$0\n\t}\n" +
		"snippet pr\n\tfmt.Println($0)\n" +
		"snippet print\n\tfmt.Println($0)\n"

	test.Diff(t, stdout.String(), want)

	_, err = os.Stat(filepath.Join(dir, "go.snippets"))
	test.True(t, errors.Is(err, os.ErrNotExist), test.Context("--stdout should not write the output file"))
}

func TestConvertToYAMLAndTOML(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "go.snippets", "snippet fn a function\n\tfunc() {}\n")

	for _, name := range []string{"go.yaml", "go.toml"} {
		t.Run(name, func(t *testing.T) {
			output := filepath.Join(dir, name)

			app := tekton.New(false, "test", strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
			test.Ok(t, app.Convert(t.Context(), tekton.ConvertOptions{Input: input, Output: output}))

			content := read(t, output)
			test.True(t, strings.Contains(content, "snippet fn"), test.Context("output: %s", content))
			test.True(t, strings.Contains(content, "a function"), test.Context("output: %s", content))
		})
	}
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	snippets := write(t, dir, "go.snippets", "snippet a\n\tx\n")
	missingPrefix := write(t, dir, "missing.json", `{"a": {"body": ["x"]}}`)
	emptyJSON := write(t, dir, "empty.json", `{}`)
	stray := write(t, dir, "stray.snippets", "oops\n")

	tests := []struct {
		want    error                 // Expected sentinel, nil means just any error
		name    string                // Name of the test case
		options tekton.ConvertOptions // Options to convert with
	}{
		{
			name:    "unsupported mapping",
			options: tekton.ConvertOptions{Input: snippets, Output: filepath.Join(dir, "out.snippets")},
			want:    snippet.ErrUnsupportedMapping,
		},
		{
			name:    "unknown output",
			options: tekton.ConvertOptions{Input: snippets, Output: filepath.Join(dir, "out.txt")},
			want:    snippet.ErrUnsupportedMapping,
		},
		{
			name:    "missing prefix",
			options: tekton.ConvertOptions{Input: missingPrefix, Output: filepath.Join(dir, "out.json")},
			want:    snippet.ErrMissingPrefix,
		},
		{
			name:    "empty input",
			options: tekton.ConvertOptions{Input: emptyJSON, Output: filepath.Join(dir, "out.yaml")},
			want:    snippet.ErrEmptyInput,
		},
		{
			name:    "malformed",
			options: tekton.ConvertOptions{Input: stray, Output: filepath.Join(dir, "out.json")},
			want:    snippet.ErrMalformedSource,
		},
		{
			name:    "missing input",
			options: tekton.ConvertOptions{Input: filepath.Join(dir, "nope.json"), Output: filepath.Join(dir, "out.snippets")},
			want:    os.ErrNotExist,
		},
		{
			name:    "same file",
			options: tekton.ConvertOptions{Input: emptyJSON, Output: emptyJSON},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := tekton.New(false, "test", strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

			err := app.Convert(t.Context(), tt.options)
			test.Err(t, err)

			if tt.want != nil {
				test.True(t, errors.Is(err, tt.want), test.Context("got %v", err))
			}
		})
	}

	// Nothing should have been written by any failure
	for _, name := range []string{"out.snippets", "out.txt", "out.json", "out.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		test.True(t, errors.Is(err, os.ErrNotExist), test.Context("%s should not exist", name))
	}
}

func TestConvertKeepsOutputWithoutTriggers(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "triggers.json", `{"a": {"prefix": [], "body": ["x"]}, "b": {"prefix": [1, 2], "body": ["y"]}}`)
	existing := "snippet keep\n\told content\n"
	output := write(t, dir, "out.snippets", existing)

	stdout := &bytes.Buffer{}

	app := tekton.New(false, "test", strings.NewReader(""), stdout, &bytes.Buffer{})
	err := app.Convert(t.Context(), tekton.ConvertOptions{Input: input, Output: output})
	test.Err(t, err)
	test.True(t, errors.Is(err, snippet.ErrMalformedSource), test.Context("got %v", err))

	test.Equal(t, read(t, output), existing, test.Context("output file should be untouched"))
	test.False(t, strings.Contains(stdout.String(), "Converted"), test.Context("stdout: %s", stdout.String()))
}

func TestConvertConfig(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "go.snippets", "snippet a\n\tx\n")
	cfg := write(t, dir, "tekton.toml", "[convert]\ninteractive = true\n")
	output := filepath.Join(dir, "go.json")

	app := tekton.New(false, "test", strings.NewReader("From Config\n"), &bytes.Buffer{}, &bytes.Buffer{})
	err := app.Convert(t.Context(), tekton.ConvertOptions{Input: input, Output: output, Config: cfg})
	test.Ok(t, err)

	test.True(t, strings.Contains(read(t, output), `"From Config"`), test.Context("config should have turned on interactive naming"))
}

func TestSupported(t *testing.T) {
	test.True(t, tekton.Supported(format.KindSnipmate, format.KindJSON))
	test.True(t, tekton.Supported(format.KindJSON, format.KindSnipmate))
	test.True(t, tekton.Supported(format.KindJSON, format.KindJSON))
	test.True(t, tekton.Supported(format.KindJSON, format.KindTOML))
	test.True(t, tekton.Supported(format.KindSnipmate, format.KindYAML))
	test.False(t, tekton.Supported(format.KindSnipmate, format.KindSnipmate))
	test.False(t, tekton.Supported(format.KindYAML, format.KindJSON))
	test.False(t, tekton.Supported(format.KindUnknown, format.KindJSON))
}

func TestConvertOptionsValidate(t *testing.T) {
	test.Err(t, tekton.ConvertOptions{}.Validate())
	test.Err(t, tekton.ConvertOptions{Input: "a.json"}.Validate())
	test.Err(t, tekton.ConvertOptions{Input: "a.json", Output: "./a.json"}.Validate())
	test.Ok(t, tekton.ConvertOptions{Input: "a.json", Output: "a.json", Stdout: true}.Validate())
	test.Ok(t, tekton.ConvertOptions{Input: "a.snippets", Output: "a.json"}.Validate())
}
