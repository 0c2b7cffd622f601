package snippet

import "strings"

// UnescapeQuotes replaces every backslash-doublequote sequence in s with a bare
// doublequote, undoing JSON string escaping on text lifted out of a JSON string.
func UnescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}

// ExpandTabLiteral replaces every literal backslash-t sequence in s with
// two spaces.
//
// The line format encodes indentation as an escaped tab, the JSON format does not.
func ExpandTabLiteral(s string) string {
	return strings.ReplaceAll(s, `\t`, "  ")
}

// StripBareQuotes removes a stray doublequote from the start of s and another
// from the end, the artifacts left behind when a JSON string is coerced to
// text with its quotes intact. Each end is handled on its own.
//
// A trailing quote that is part of an escaped quote is kept.
func StripBareQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	if strings.HasSuffix(s, `"`) && !strings.HasSuffix(s, `\"`) {
		s = s[:len(s)-1]
	}

	return s
}

// NormaliseLine applies all the body line rules used when writing the line
// format: stray wrapping quotes are stripped, escaped quotes are unescaped
// and escaped tabs become two spaces.
func NormaliseLine(line string) string {
	return ExpandTabLiteral(UnescapeQuotes(StripBareQuotes(line)))
}
