// Package dictionary provides a token-tuple dictionary, as used for
// gazetteer lookups and token-class features. Entries are tuples of tokens
// with optional string attributes; lookups are case sensitive or insensitive
// per dictionary.
package dictionary

import (
	"sort"
	"strings"
)

// TokenList is an immutable tuple of tokens, the unit stored in a
// dictionary.
type TokenList []string

// entryKeySeparator cannot occur inside a token.
const entryKeySeparator = "\x00"

func (t TokenList) key(caseSensitive bool) string {
	if caseSensitive {
		return strings.Join(t, entryKeySeparator)
	}
	lowered := make([]string, len(t))
	for i, token := range t {
		lowered[i] = strings.ToLower(token)
	}
	return strings.Join(lowered, entryKeySeparator)
}

func (t TokenList) String() string { return "[" + strings.Join(t, ",") + "]" }

// Entry is one dictionary entry: a token tuple plus its attributes.
type Entry struct {
	Tokens     TokenList         `json:"tokens"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Dictionary is a set of token tuples. The zero value is not usable; create
// dictionaries with New.
type Dictionary struct {
	caseSensitive bool
	entries       map[string]Entry
}

// New returns an empty dictionary. With caseSensitive false, lookups ignore
// token casing but entries keep the casing they were inserted with.
func New(caseSensitive bool) *Dictionary {
	return &Dictionary{
		caseSensitive: caseSensitive,
		entries:       make(map[string]Entry),
	}
}

// CaseSensitive reports whether lookups honor token casing.
func (d *Dictionary) CaseSensitive() bool { return d.caseSensitive }

// Put inserts the token tuple without attributes. An existing entry for the
// same tuple is replaced.
func (d *Dictionary) Put(tokens TokenList) {
	d.PutEntry(Entry{Tokens: tokens})
}

// PutEntry inserts an entry, replacing any existing entry for the same
// tuple.
func (d *Dictionary) PutEntry(entry Entry) {
	d.entries[entry.Tokens.key(d.caseSensitive)] = entry
}

// Contains reports whether the token tuple is in the dictionary.
func (d *Dictionary) Contains(tokens TokenList) bool {
	_, ok := d.entries[tokens.key(d.caseSensitive)]
	return ok
}

// Attributes returns the attributes stored for the token tuple, or false if
// the tuple is not present.
func (d *Dictionary) Attributes(tokens TokenList) (map[string]string, bool) {
	entry, ok := d.entries[tokens.key(d.caseSensitive)]
	if !ok {
		return nil, false
	}
	return entry.Attributes, true
}

// Remove deletes the token tuple if present.
func (d *Dictionary) Remove(tokens TokenList) {
	delete(d.entries, tokens.key(d.caseSensitive))
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns all entries ordered by their lookup key.
func (d *Dictionary) Entries() []Entry {
	keys := make([]string, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, key := range keys {
		entries[i] = d.entries[key]
	}
	return entries
}

// MinTokenCount returns the smallest tuple length in the dictionary, or 0
// for an empty dictionary.
func (d *Dictionary) MinTokenCount() int {
	min := 0
	first := true
	for _, entry := range d.entries {
		if first || len(entry.Tokens) < min {
			min = len(entry.Tokens)
			first = false
		}
	}
	return min
}

// MaxTokenCount returns the largest tuple length in the dictionary.
func (d *Dictionary) MaxTokenCount() int {
	max := 0
	for _, entry := range d.entries {
		if len(entry.Tokens) > max {
			max = len(entry.Tokens)
		}
	}
	return max
}
