package tekton_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.followtheprocess.codes/tekton/internal/tekton"
	"go.followtheprocess.codes/test"
	"go.uber.org/goleak"
)

// snippetFiles returns every snippet file in dir, sorted.
func snippetFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string

	for _, pattern := range []string{"*.snippets", "*.json", "*.code-snippets"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		test.Ok(t, err)

		files = append(files, matches...)
	}

	slices.Sort(files)

	return files
}

func TestCheckValid(t *testing.T) {
	for _, file := range snippetFiles(t, filepath.Join("testdata", "check", "valid")) {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			app := tekton.New(false, "test", os.Stdin, stdout, stderr)

			err := app.Check(t.Context(), tekton.CheckOptions{Path: file})
			test.Ok(t, err)

			test.Diff(t, stdout.String(), fmt.Sprintf("Success: %s is valid\n", file))
			test.Diff(t, stderr.String(), "")
		})
	}
}

func TestCheckValidDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join("testdata", "check", "valid")
	files := snippetFiles(t, path)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := tekton.New(false, "test", os.Stdin, stdout, stderr)

	err := app.Check(t.Context(), tekton.CheckOptions{Path: path})
	test.Ok(t, err)

	s := &strings.Builder{}

	// Write a success line for every file in the dir
	for _, file := range files {
		fmt.Fprintf(s, "Success: %s is valid\n", file)
	}

	test.Diff(t, stdout.String(), s.String())
	test.Diff(t, stderr.String(), "")
}

func TestCheckInvalid(t *testing.T) {
	for _, file := range snippetFiles(t, filepath.Join("testdata", "check", "invalid")) {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			app := tekton.New(false, "test", os.Stdin, stdout, stderr)

			err := app.Check(t.Context(), tekton.CheckOptions{Path: file})
			test.Err(t, err)

			test.Equal(t, stdout.String(), "")

			// The detail of each error is tested in the packages that produce them,
			// all we care about here is that it names the file
			test.True(t, strings.Contains(stderr.String(), file), test.Context("stderr: %s", stderr.String()))
		})
	}
}

func TestCheckMissing(t *testing.T) {
	app := tekton.New(false, "test", os.Stdin, &bytes.Buffer{}, &bytes.Buffer{})

	err := app.Check(t.Context(), tekton.CheckOptions{Path: filepath.Join(t.TempDir(), "missing.json")})
	test.Err(t, err)
}

func TestCheckOptionsValidate(t *testing.T) {
	test.Err(t, tekton.CheckOptions{}.Validate())
	test.Ok(t, tekton.CheckOptions{Path: "."}.Validate())
}
