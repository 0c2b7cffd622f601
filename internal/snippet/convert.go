package snippet

import (
	"slices"
	"strings"
	"unicode"
)

// Record converts a line format snippet into its JSON shape, returning the
// display name the snippet gets when nobody chooses a better one.
//
// The header line of the line format visually eats the indentation of the
// snippet's opening line, so the first body line has its leading whitespace
// trimmed. Every other line keeps its indentation.
func (l LineRecord) Record() (name string, record Record) {
	body := slices.Clone(l.Body)
	if body == nil {
		body = []string{}
	}

	if len(body) > 0 {
		body[0] = strings.TrimLeftFunc(body[0], unicode.IsSpace)
	}

	record = Record{
		Prefix: Single(l.Prefix),
		Body:   body,
	}

	if l.Description != "" {
		description := UnescapeQuotes(l.Description)
		record.Description = &description
	}

	return DefaultName(l.Prefix), record
}

// DefaultName returns the name given to a snippet converted from the line
// format with the given prefix.
func DefaultName(prefix string) string {
	return "snippet " + prefix
}
