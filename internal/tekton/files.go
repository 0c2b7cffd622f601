package tekton

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// filePerms are the permissions given to files tekton creates.
const filePerms = 0o644

// importer returns the [format.Importer] for reading a file of the given kind.
func (t Tekton) importer(kind format.Kind, name string, interactive bool) (format.Importer, error) {
	var prompter format.Prompter
	if interactive {
		prompter = t.prompter
	}

	switch kind {
	case format.KindSnipmate:
		return format.SnipmateImporter{Name: name, Prompter: prompter}, nil
	case format.KindJSON:
		return format.JSONImporter{Interactive: interactive, Prompter: prompter}, nil
	default:
		return nil, fmt.Errorf("%w: cannot read %s files", snippet.ErrUnsupportedMapping, kind)
	}
}

// exporter returns the [format.Exporter] for writing a file of the given kind.
func exporter(kind format.Kind) (format.Exporter, error) {
	switch kind {
	case format.KindSnipmate:
		return format.SnipmateExporter{}, nil
	case format.KindJSON:
		return format.JSONExporter{}, nil
	case format.KindYAML:
		return format.YAMLExporter{}, nil
	case format.KindTOML:
		return format.TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: cannot write %s files", snippet.ErrUnsupportedMapping, kind)
	}
}

// load reads and imports the snippet file at path.
func load(path string, importer format.Importer) (*snippet.Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	table, err := importer.Import(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("could not load snippets from %s: %w", path, err)
	}

	return table, nil
}

// render exports table into memory so that nothing is written if it fails.
func render(table *snippet.Table, exporter format.Exporter) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := exporter.Export(buf, table); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// save writes content to the file at path.
func save(path string, content []byte) error {
	if err := os.WriteFile(path, content, filePerms); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

// collect returns the files under root whose kind is one of kinds, in lexical
// order. Hidden directories are skipped.
//
// If root is a file it is returned as is.
func collect(root string, kinds ...format.Kind) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", root, err)
	}

	return lo.Filter(files, func(path string, _ int) bool {
		return lo.Contains(kinds, format.Detect(path))
	}), nil
}
