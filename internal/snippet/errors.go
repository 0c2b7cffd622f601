package snippet

import "errors"

var (
	// ErrUnsupportedMapping is returned when there is no conversion between the
	// requested source and target formats.
	ErrUnsupportedMapping = errors.New("no supported conversion")

	// ErrEmptyInput is returned when there are no snippets to write. Writing an
	// empty result would wipe out the target file so it is always an error.
	ErrEmptyInput = errors.New("refusing to write 0 snippets")

	// ErrMissingPrefix is returned when a JSON file contains snippets without a
	// prefix and there is nobody around to ask for one.
	ErrMissingPrefix = errors.New("file contains snippets with missing prefix field(s)")

	// ErrMalformedSource is returned when the source text cannot be understood at all,
	// either invalid JSON or a line format file with body text before any header.
	ErrMalformedSource = errors.New("malformed source")
)
