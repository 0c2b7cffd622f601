package tekton

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/tekton/internal/config"
	"go.followtheprocess.codes/tekton/internal/format"
	"go.followtheprocess.codes/tekton/internal/snippet"
)

// ConvertOptions are the options passed to the convert subcommand.
type ConvertOptions struct {
	// Input is the path to the snippet file to convert.
	Input string

	// Output is the path of the converted file, its extension decides the
	// format to convert to.
	Output string

	// Config is the path to the tekton config file.
	Config string

	// Interactive asks the user to name each snippet when converting
	// from the snipmate format, and to supply any missing prefixes.
	Interactive bool

	// Stdout writes the converted snippets to stdout rather than Output.
	Stdout bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the ConvertOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (c ConvertOptions) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("input path cannot be empty")
	case c.Output == "":
		return errors.New("output path cannot be empty")
	case !c.Stdout && filepath.Clean(c.Input) == filepath.Clean(c.Output):
		return fmt.Errorf("input and output are the same file (%s), use the sort command to sort a file in place", c.Input)
	default:
		return nil
	}
}

// Convert implements the convert subcommand.
func (t Tekton) Convert(ctx context.Context, options ConvertOptions) error {
	logger := t.logger.Prefixed("convert").With(slog.String("input", options.Input), slog.String("output", options.Output))
	logger.Debug("Convert configuration", slog.String("options", fmt.Sprintf("%+v", options)), slog.String("version", t.version))

	if err := options.Validate(); err != nil {
		return err
	}

	cfg, err := config.Load(options.Config)
	if err != nil {
		return err
	}

	options.Interactive = options.Interactive || cfg.Convert.Interactive

	from := format.Detect(options.Input)
	to := format.Detect(options.Output)

	if !Supported(from, to) {
		return fmt.Errorf("%w: %s (%s) to %s (%s)", snippet.ErrUnsupportedMapping, options.Input, from, options.Output, to)
	}

	logger.Debug("Detected formats", slog.String("from", from.String()), slog.String("to", to.String()))

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	importer, err := t.importer(from, options.Input, options.Interactive)
	if err != nil {
		return err
	}

	table, err := load(options.Input, importer)
	if err != nil && from == format.KindJSON && to != format.KindJSON && format.NeedsMultiPrefix(err) {
		logger.Debug("Retrying with multi-prefix loader", slog.String("cause", err.Error()))

		table, err = load(options.Input, format.MultiPrefixImporter{})
	}

	if err != nil {
		return err
	}

	logger.Debug("Loaded snippets", slog.Int("snippets", table.Len()), slog.Duration("took", time.Since(start)))

	exp, err := exporter(to)
	if err != nil {
		return err
	}

	out, err := render(table, exp)
	if err != nil {
		return fmt.Errorf("could not convert %s: %w", options.Input, err)
	}

	if options.Stdout {
		_, err = t.stdout.Write(out)
		return err
	}

	if err := save(options.Output, out); err != nil {
		return err
	}

	msg.Fsuccess(
		t.stdout,
		"Converted %s snippet(s) from %s to %s",
		countStyle.Text(fmt.Sprint(table.Len())),
		fileStyle.Text(options.Input),
		fileStyle.Text(options.Output),
	)

	return nil
}

// Supported reports whether tekton can convert snippets from one kind
// of file to another.
func Supported(from, to format.Kind) bool {
	switch from {
	case format.KindSnipmate:
		return to == format.KindJSON || to == format.KindYAML || to == format.KindTOML
	case format.KindJSON:
		return to == format.KindSnipmate || to == format.KindJSON || to == format.KindYAML || to == format.KindTOML
	default:
		return false
	}
}
