package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FactSet maps fact names to their values. Values are JSON-shaped:
// strings, numbers, booleans, nested maps, or slices, depending on
// which output format the fact source decoded.
type FactSet map[string]any

// Entry is a single named fact taken from a FactSet snapshot.
type Entry struct {
	Name  string
	Value any
}

// SortedKeys returns the fact names in lexical order.
// Go maps have no iteration order, so projections sort for
// deterministic output.
func (fs FactSet) SortedKeys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the facts as a slice ordered by name.
func (fs FactSet) Entries() []Entry {
	entries := make([]Entry, 0, len(fs))
	for _, k := range fs.SortedKeys() {
		entries = append(entries, Entry{Name: k, Value: fs[k]})
	}
	return entries
}

// FormatValue renders a fact value for display. Strings are returned
// verbatim; everything else is rendered as compact JSON so nested
// structures stay readable on one line.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
