// Package syntax provides the source positions and diagnostics shared by the
// snippet file parsers.
package syntax

import (
	"cmp"
	"fmt"
)

// Position is a location in a snippet source file, it can point at a single
// character or, via StartCol and EndCol, a run of characters on one line.
//
// Snippets read from stdin should use the name "stdin".
type Position struct {
	Name     string `json:"name"`     // Filename
	Offset   int    `json:"offset"`   // Byte offset of the start of the line from the start of the file
	Line     int    `json:"line"`     // Line number (1 indexed)
	StartCol int    `json:"startCol"` // Start column (1 indexed)
	EndCol   int    `json:"endCol"`   // End column (1 indexed), EndCol == StartCol when pointing to a single character
}

// IsValid reports whether the [Position] points somewhere real: it must have a
// name, a line and a start column, and the end column may not come before the start.
func (p Position) IsValid() bool {
	return p.Name != "" && p.Line >= 1 && p.StartCol >= 1 && p.EndCol >= p.StartCol
}

// String returns a string representation of a [Position] in the 'file:line:col'
// form most editors and terminals understand, or 'file:line:start-end' when
// it covers a range.
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf(
			"BadPosition: {Name: %q, Line: %d, StartCol: %d, EndCol: %d}",
			p.Name,
			p.Line,
			p.StartCol,
			p.EndCol,
		)
	}

	if p.StartCol == p.EndCol {
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.StartCol)
	}

	return fmt.Sprintf("%s:%d:%d-%d", p.Name, p.Line, p.StartCol, p.EndCol)
}

// ComparePosition is like [cmp.Compare] for a [Position], ordering by file
// name and then by line.
func ComparePosition(x, y Position) int {
	if x.Name != y.Name {
		return cmp.Compare(x.Name, y.Name)
	}

	if x.Line != y.Line {
		return cmp.Compare(x.Line, y.Line)
	}

	return cmp.Compare(x.StartCol, y.StartCol)
}

// Diagnostic is a syntax level diagnostic.
type Diagnostic struct {
	Msg      string   `json:"msg"`      // A descriptive message explaining the error
	Position Position `json:"position"` // The source position the diagnostic points to
}

// String prints a [Diagnostic].
func (d Diagnostic) String() string {
	return d.Position.String() + ": " + d.Msg
}
