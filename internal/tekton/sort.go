package tekton

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/tekton/internal/config"
	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// SortOptions are the options passed to the sort subcommand.
type SortOptions struct {
	// Path is the JSON snippet file to sort, or a directory of them when
	// Recursive is set.
	Path string

	// Config is the path to the tekton config file.
	Config string

	// Recursive sorts every JSON snippet file under Path.
	Recursive bool

	// Interactive asks the user to supply missing prefixes, and retries files
	// that failed with the multi-prefix loader.
	Interactive bool

	// FailFast stops at the first file that cannot be sorted, by default
	// the failure is reported and the rest of the files are sorted.
	FailFast bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the SortOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (s SortOptions) Validate() error {
	if s.Path == "" {
		return errors.New("path cannot be empty")
	}

	return nil
}

// sortFailure is a file that could not be sorted.
type sortFailure struct {
	err  error
	path string
}

// Sort implements the sort subcommand.
func (t Tekton) Sort(ctx context.Context, options SortOptions) error {
	logger := t.logger.Prefixed("sort").With(slog.String("path", options.Path))

	if err := options.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	options.Recursive = options.Recursive || cfg.Sort.Recursive
	options.Interactive = options.Interactive || cfg.Sort.Interactive
	options.FailFast = options.FailFast || cfg.Sort.FailFast

	logger.Debug("Sort configuration", slog.String("options", fmt.Sprintf("%+v", options)), slog.String("version", t.version))

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	if info.IsDir() && !options.Recursive {
		return fmt.Errorf("%s is a directory, pass --recursive to sort every JSON snippet file in it", options.Path)
	}

	if !info.IsDir() {
		if kind := format.Detect(options.Path); kind != format.KindJSON {
			return fmt.Errorf("%w: only JSON snippet files can be sorted, %s is %s", snippet.ErrUnsupportedMapping, options.Path, kind)
		}
	}

	paths, err := collect(options.Path, format.KindJSON)
	if err != nil {
		return err
	}

	logger.Debug("Collected files to sort", slog.Int("files", len(paths)))

	importer, err := t.importer(format.KindJSON, "", options.Interactive)
	if err != nil {
		return err
	}

	sorted := 0

	var failures []sortFailure

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := t.sortFile(logger, path, importer); err != nil {
			if options.FailFast {
				return fmt.Errorf("could not sort %s: %w", path, err)
			}

			failures = append(failures, sortFailure{path: path, err: err})

			continue
		}

		sorted++
	}

	if options.Interactive && len(failures) != 0 {
		logger.Debug("Retrying failed files with the multi-prefix loader", slog.Int("files", len(failures)))

		var remaining []sortFailure

		for _, failure := range failures {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := t.sortFile(logger, failure.path, format.MultiPrefixImporter{}); err != nil {
				remaining = append(remaining, sortFailure{path: failure.path, err: err})
				continue
			}

			sorted++
		}

		failures = remaining
	}

	msg.Fsuccess(t.stdout, "Sorted %s file(s)", countStyle.Text(fmt.Sprint(sorted)))

	if len(failures) == 0 {
		return nil
	}

	msg.Fwarn(t.stderr, "%d file(s) could not be sorted:", len(failures))

	for _, failure := range failures {
		fmt.Fprintf(t.stderr, "  - %s: %v\n", fileStyle.Text(failure.path), failure.err)
	}

	if !options.Interactive {
		msg.Finfo(t.stderr, "Snippets with missing or multiple prefixes can be fixed by re-running with --interactive")
	}

	return fmt.Errorf("%d file(s) could not be sorted", len(failures))
}

// sortFile sorts a single JSON snippet file in place.
func (t Tekton) sortFile(logger *log.Logger, path string, importer format.Importer) error {
	start := time.Now()

	table, err := load(path, importer)
	if err != nil {
		return err
	}

	out, err := render(table, format.JSONExporter{})
	if err != nil {
		return err
	}

	if err := save(path, out); err != nil {
		return err
	}

	logger.Debug(
		"Sorted file",
		slog.String("file", path),
		slog.Int("snippets", table.Len()),
		slog.Duration("took", time.Since(start)),
	)

	return nil
}
