package scalehelper

import "strings"

// Catalog maps a lower-case "<root> <pattern>" name, e.g. "a major", to the
// spoken list of notes.
type Catalog map[string]string

// NewCatalog normalizes keys so lookups are case and whitespace insensitive.
func NewCatalog(entries map[string]string) Catalog {
	c := make(Catalog, len(entries))
	for k, v := range entries {
		c[normalizeKey(k)] = v
	}
	return c
}

// Notes returns the notes for name.
func (c Catalog) Notes(name string) (string, bool) {
	notes, ok := c[normalizeKey(name)]
	return notes, ok
}

func normalizeKey(k string) string {
	return strings.Join(strings.Fields(strings.ToLower(k)), " ")
}
