package snippet

import (
	"cmp"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table is a collection of snippets keyed by display name.
//
// A Table remembers the order in which names were first inserted, this has no
// bearing on rendered output (which is always sorted) other than to break ties
// between names that differ only by case. Setting a name that already exists
// replaces its record.
//
// The zero value is an empty table ready to use.
type Table struct {
	entries *orderedmap.OrderedMap[string, Record]
}

// NewTable returns a new, empty [Table].
func NewTable() *Table {
	return &Table{entries: orderedmap.New[string, Record]()}
}

// Set inserts record under name, replacing any existing record of the same name.
func (t *Table) Set(name string, record Record) {
	if t.entries == nil {
		t.entries = orderedmap.New[string, Record]()
	}

	t.entries.Set(name, record)
}

// Get returns the record stored under name, and whether it was present.
func (t *Table) Get(name string) (Record, bool) {
	if t == nil || t.entries == nil {
		return Record{}, false
	}

	return t.entries.Get(name)
}

// Len returns the number of snippets in the table.
func (t *Table) Len() int {
	if t == nil || t.entries == nil {
		return 0
	}

	return t.entries.Len()
}

// Keys returns the names of all the snippets in insertion order.
func (t *Table) Keys() []string {
	if t == nil || t.entries == nil {
		return nil
	}

	keys := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// SortedKeys returns the names of all the snippets ordered by a case-insensitive
// comparison. Names that compare equal keep their insertion order.
func (t *Table) SortedKeys() []string {
	keys := t.Keys()
	slices.SortStableFunc(keys, CompareNames)

	return keys
}

// CompareNames compares two snippet names without regard to case, it is the
// ordering used by every renderer.
func CompareNames(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}
