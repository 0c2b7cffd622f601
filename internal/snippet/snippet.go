// Package snippet provides the canonical data structures describing a snippet
// collection, along with the rules for moving snippets between the line-oriented
// snipmate format and the JSON "friendly" format.
//
// A [Table] maps a snippet's display name to its [Record]. Tables are built by the
// importers in package format, and turned back into text by [Render] (JSON) or
// [RenderLines] (snipmate). Both renderers order snippets by a case-insensitive
// comparison of their names so that output is stable from run to run.
package snippet

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// Record is a single snippet as it appears in the JSON format.
type Record struct {
	// Description is an optional explanation of the snippet, nil
	// means absent which is distinct from the empty string.
	Description *string `json:"description,omitempty"`

	// Prefix is the trigger (or triggers) that invoke the snippet.
	Prefix Prefix `json:"prefix,omitzero"`

	// Body is the literal content of the snippet, one line per element.
	Body []string `json:"body"`
}

// MarshalJSON implements [json.Marshaler] for a [Record].
//
// Fields are emitted in the order prefix, body, description and absent fields
// are omitted entirely.
func (r Record) MarshalJSON() ([]byte, error) {
	type wire struct {
		Prefix      Prefix   `json:"prefix,omitzero"`
		Body        []string `json:"body"`
		Description *string  `json:"description,omitempty"`
	}

	body := r.Body
	if body == nil {
		body = []string{}
	}

	return marshal(wire{Prefix: r.Prefix, Body: body, Description: r.Description})
}

// Equal reports whether two records are identical.
func (r Record) Equal(other Record) bool {
	if (r.Description == nil) != (other.Description == nil) {
		return false
	}

	if r.Description != nil && *r.Description != *other.Description {
		return false
	}

	return r.Prefix.Equal(other.Prefix) && slices.Equal(r.Body, other.Body)
}

// Lines splits the record into its line format equivalents, one [LineRecord]
// per trigger in the prefix.
//
// A record with an absent prefix has no line format representation and so
// returns nil.
func (r Record) Lines() []LineRecord {
	triggers := r.Prefix.Values()
	if len(triggers) == 0 {
		return nil
	}

	var description string
	if r.Description != nil {
		description = *r.Description
	}

	lines := make([]LineRecord, 0, len(triggers))
	for _, trigger := range triggers {
		lines = append(lines, LineRecord{
			Prefix:      strings.ReplaceAll(trigger, `"`, ""),
			Body:        r.Body,
			Description: description,
		})
	}

	return lines
}

// Prefix is the trigger text for a snippet.
//
// A Prefix is either absent (the zero value), a single string, or an ordered
// list of strings. The distinction between a single string and a list of one
// is preserved so the JSON shape survives a round trip.
type Prefix struct {
	values []string
	list   bool
}

// Single returns a [Prefix] holding one trigger.
func Single(trigger string) Prefix {
	return Prefix{values: []string{trigger}}
}

// Multi returns a list [Prefix] holding the given triggers in order.
func Multi(triggers ...string) Prefix {
	values := slices.Clone(triggers)
	if values == nil {
		values = []string{}
	}

	return Prefix{values: values, list: true}
}

// IsZero reports whether the prefix is absent.
func (p Prefix) IsZero() bool {
	return !p.list && len(p.values) == 0
}

// IsList reports whether the prefix is list valued.
func (p Prefix) IsList() bool {
	return p.list
}

// Values returns the triggers held in the prefix, in order.
func (p Prefix) Values() []string {
	return slices.Clone(p.values)
}

// Equal reports whether two prefixes hold the same triggers in the same shape.
func (p Prefix) Equal(other Prefix) bool {
	return p.list == other.list && slices.Equal(p.values, other.values)
}

// String implements [fmt.Stringer] for a [Prefix].
func (p Prefix) String() string {
	if p.list {
		return "[" + strings.Join(p.values, ", ") + "]"
	}

	if len(p.values) == 0 {
		return "<absent>"
	}

	return p.values[0]
}

// MarshalJSON implements [json.Marshaler] for a [Prefix], a single prefix
// is a JSON string and a list prefix is an array of strings.
func (p Prefix) MarshalJSON() ([]byte, error) {
	switch {
	case p.list:
		return marshal(p.values)
	case len(p.values) == 0:
		return []byte("null"), nil
	default:
		return marshal(p.values[0])
	}
}

// LineRecord is a single snippet as it appears in the line (snipmate) format.
type LineRecord struct {
	Prefix      string   // The token following the 'snippet' keyword
	Description string   // Any remaining words on the header line, empty if there were none
	Body        []string // The lines following the header, in order
}

// String renders the record in line format: a 'snippet <prefix> [description]'
// header followed by each body line indented by a single tab.
func (l LineRecord) String() string {
	s := &strings.Builder{}
	s.WriteString("snippet ")
	s.WriteString(l.Prefix)

	if l.Description != "" {
		s.WriteByte(' ')
		s.WriteString(l.Description)
	}

	s.WriteByte('\n')

	for _, line := range l.Body {
		s.WriteByte('\t')
		s.WriteString(NormaliseLine(line))
		s.WriteByte('\n')
	}

	return s.String()
}

// Deferred is a snippet held back from a table during lenient loading because
// it has no usable prefix, it is completed by asking the user for one.
type Deferred struct {
	Name   string // The snippet's key in the table
	Raw    string // The prefix as it appeared in the source, empty if there was none
	Record Record // The partial record, Prefix is absent
}

// marshal is [json.Marshal] without the HTML escaping, snippet bodies are
// full of '<', '>' and '&' and escaping them makes the output unreadable.
func marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
