// Package wordlist loads completion word lists (.cwl files) into an ordered catalog.
package wordlist

import "strings"

// Entry is a single completion candidate
type Entry struct {
	Token       string // Text offered to the user
	Description string // Name of the word list the token came from
}

// Catalog is the ordered set of completion entries for one editor session.
// It is never mutated after Load returns, so concurrent readers need no locking.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog from entries, copying the slice
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the i-th entry
func (c *Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries in catalog order
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Tokens returns the token text of every entry in catalog order
func (c *Catalog) Tokens() []string {
	if c == nil {
		return nil
	}
	tokens := make([]string, len(c.entries))
	for i, e := range c.entries {
		tokens[i] = e.Token
	}
	return tokens
}

// Filter returns entries whose token starts with prefix, keeping catalog order
func (c *Catalog) Filter(prefix string) []Entry {
	if prefix == "" {
		return c.Entries()
	}
	if c == nil {
		return nil
	}

	var filtered []Entry
	for _, e := range c.entries {
		if strings.HasPrefix(e.Token, prefix) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
