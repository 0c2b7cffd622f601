// Package parser implements a parser for the snipmate line format.
//
// A snipmate file is a sequence of snippet blocks, each introduced by a header
// line of the form:
//
//	snippet <trigger> [description...]
//
// followed by any number of body lines, kept verbatim other than the expansion
// of escaped tabs. Blank lines and '#'
// comments appearing before the first header are ignored, any other text
// there is a syntax error.
//
// Like most parsers, if a syntax error occurs the records parsed so far are
// still returned alongside the error, the full detail of every error is
// available from [Parser.Diagnostics].
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.followtheprocess.codes/tekton/internal/snippet"
	"go.followtheprocess.codes/tekton/internal/syntax"
)

// ErrParse is a generic parsing error, details on the error are available
// from [Parser.Diagnostics].
var ErrParse = fmt.Errorf("%w: parse error", snippet.ErrMalformedSource)

// header matches the start of a snippet block, the keyword is case insensitive
// and must be followed by whitespace then at least one alphanumeric character.
var header = regexp.MustCompile(`^(?i:snippet)[ \t]+[[:alnum:]]`)

// Parser is the snipmate file parser.
type Parser struct {
	diagnostics []syntax.Diagnostic // Diagnostics gathered during parsing
	name        string              // Name of the file being parsed
	src         []byte              // Raw source text
	line        []byte              // Current line under inspection, without the line terminator
	offset      int                 // Byte offset of the start of the current line
	lineNo      int                 // Current line number (1 indexed)
	next        int                 // Byte offset of the start of the next line
	hadErrors   bool                // Whether we encountered parse errors
}

// New initialises and returns a new [Parser] that parses src.
func New(name string, src []byte) *Parser {
	return &Parser{
		name: name,
		src:  src,
	}
}

// Parse parses the file to completion returning the snippet records in the
// order they appear and any parsing errors.
//
// The returned error will simply signify whether or not there were parse errors,
// [Parser.Diagnostics] has the full detail and should be preferred.
func (p *Parser) Parse() ([]snippet.LineRecord, error) {
	if p == nil {
		return nil, errors.New("Parse called on nil parser")
	}

	var (
		records  []snippet.LineRecord
		current  *snippet.LineRecord
		reported bool
	)

	for p.advance() {
		text := string(p.line)

		if header.MatchString(text) {
			if current != nil {
				records = append(records, *current)
			}

			record := parseHeader(text)
			current = &record

			continue
		}

		if current == nil {
			trimmed := strings.TrimSpace(text)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}

			// Only the first stray line is worth reporting, the rest are
			// almost certainly the same problem
			if !reported {
				p.error("snippet body found before any 'snippet' header")
				reported = true
			}

			continue
		}

		current.Body = append(current.Body, snippet.ExpandTabLiteral(text))
	}

	if current != nil {
		records = append(records, *current)
	}

	if p.hadErrors {
		return records, ErrParse
	}

	return records, nil
}

// Diagnostics returns the list of diagnostics gathered during parsing, sorted
// by position.
func (p *Parser) Diagnostics() []syntax.Diagnostic {
	diagnostics := slices.Clone(p.diagnostics)
	slices.SortFunc(diagnostics, func(a, b syntax.Diagnostic) int {
		return syntax.ComparePosition(a.Position, b.Position)
	})

	return diagnostics
}

// advance moves the parser onto the next line, reporting whether there was one.
func (p *Parser) advance() bool {
	if p.next >= len(p.src) {
		return false
	}

	p.offset = p.next
	p.lineNo++

	rest := p.src[p.offset:]
	end := bytes.IndexByte(rest, '\n')

	if end == -1 {
		p.line = rest
		p.next = len(p.src)
	} else {
		p.line = rest[:end]
		p.next = p.offset + end + 1
	}

	p.line = bytes.TrimSuffix(p.line, []byte("\r"))

	return true
}

// position returns the [syntax.Position] covering the current line.
func (p *Parser) position() syntax.Position {
	return syntax.Position{
		Name:     p.name,
		Offset:   p.offset,
		Line:     p.lineNo,
		StartCol: 1,
		EndCol:   max(len(p.line), 1),
	}
}

// error records a syntax error at the current line.
func (p *Parser) error(msg string) {
	p.hadErrors = true

	diag := syntax.Diagnostic{
		Msg:      msg,
		Position: p.position(),
	}

	p.diagnostics = append(p.diagnostics, diag)
}

// parseHeader splits a header line into its trigger and description.
func parseHeader(line string) snippet.LineRecord {
	fields := strings.Fields(line)

	// The header regex guarantees the keyword and a trigger
	record := snippet.LineRecord{Prefix: fields[1]}

	if len(fields) > 2 { //nolint:mnd // keyword, trigger, description...
		description := strings.Join(fields[2:], " ")
		record.Description = unquote(snippet.UnescapeQuotes(description))
	}

	return record
}

// unquote removes a pair of doublequotes wrapping the whole description, a
// quote at only one end is part of the text.
func unquote(description string) string {
	if len(description) >= 2 && strings.HasPrefix(description, `"`) && strings.HasSuffix(description, `"`) {
		return description[1 : len(description)-1]
	}

	return description
}
