package tekton

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/snippet"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the CheckOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (c CheckOptions) Validate() error {
	if c.Path == "" {
		return errors.New("path cannot be empty")
	}

	return nil
}

// Check implements the check subcommand.
//
// Every snippet file under the path is loaded, without asking the user anything
// and without writing anything, to see whether tekton can read it.
func (t Tekton) Check(ctx context.Context, options CheckOptions) error {
	logger := t.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path", slog.String("version", t.version))

	if err := options.Validate(); err != nil {
		return err
	}

	paths, err := collect(options.Path, format.KindSnipmate, format.KindJSON)
	if err != nil {
		return err
	}

	logger.Debug("Checking snippet files given by path", slog.Int("number", len(paths)))

	results := make([]error, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = checkFile(path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	invalid := 0

	for i, path := range paths {
		if results[i] != nil {
			invalid++

			msg.Ferror(t.stderr, "%v", results[i])

			continue
		}

		msg.Fsuccess(t.stdout, "%s is valid", path)
	}

	if invalid != 0 {
		return fmt.Errorf("%d of %d snippet file(s) are invalid", invalid, len(paths))
	}

	return nil
}

// checkFile loads a single file, returning any error.
func checkFile(path string) error {
	kind := format.Detect(path)

	var importer format.Importer

	switch kind {
	case format.KindSnipmate:
		importer = format.SnipmateImporter{Name: path}
	case format.KindJSON:
		importer = format.JSONImporter{}
	default:
		return fmt.Errorf("%w: %s is not a snippet file", snippet.ErrUnsupportedMapping, path)
	}

	table, err := load(path, importer)
	if kind == format.KindJSON && format.NeedsMultiPrefix(err) {
		table, err = load(path, format.MultiPrefixImporter{})
	}

	if err != nil {
		return err
	}

	// Nothing useful can be done with an empty file, every exporter refuses it
	if _, err := render(table, format.JSONExporter{}); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
