// Package glossary defines the acronym data model shared by the store, the
// use cases, and the command router.
package glossary

import (
	"sort"
	"strings"
)

// Entry is the definition stored under an acronym key.
type Entry struct {
	FullName    string `yaml:"full_name"`
	Description string `yaml:"description"`
}

// Glossary maps normalized acronym keys to their entries.
type Glossary map[string]Entry

// NormalizeKey returns the canonical form of an acronym key.
func NormalizeKey(acronym string) string {
	return strings.ToUpper(strings.TrimSpace(acronym))
}

// Get returns the entry stored under acronym, if any.
func (g Glossary) Get(acronym string) (Entry, bool) {
	entry, ok := g[NormalizeKey(acronym)]
	return entry, ok
}

// Has reports whether acronym is stored.
func (g Glossary) Has(acronym string) bool {
	_, ok := g[NormalizeKey(acronym)]
	return ok
}

// Put stores entry under acronym, replacing any previous entry.
func (g Glossary) Put(acronym string, entry Entry) {
	g[NormalizeKey(acronym)] = entry
}

// Remove deletes acronym and reports whether it was present.
func (g Glossary) Remove(acronym string) bool {
	key := NormalizeKey(acronym)
	if _, ok := g[key]; !ok {
		return false
	}
	delete(g, key)
	return true
}

// Keys returns all keys in ascending order.
func (g Glossary) Keys() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
