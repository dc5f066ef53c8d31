// Package hardcoded detects user-visible text that bypasses translation,
// assigns translation keys to it and rewrites the sources that hold it.
package hardcoded

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Occurrence is one place hardcoded text was found
type Occurrence struct {
	File string `yaml:"file"`
	Line int    `yaml:"line"`
	Text string `yaml:"text"`
}

// ReplacementMap maps detected text to its translation key in first-seen order
type ReplacementMap struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewReplacementMap returns an empty map
func NewReplacementMap() *ReplacementMap {
	return &ReplacementMap{m: orderedmap.New[string, string]()}
}

// Set records key for text
func (r *ReplacementMap) Set(text, key string) {
	r.m.Set(text, key)
}

// Lookup returns the key chosen for text
func (r *ReplacementMap) Lookup(text string) (string, bool) {
	return r.m.Get(text)
}

// Len returns the number of distinct texts
func (r *ReplacementMap) Len() int {
	return r.m.Len()
}

// All yields text, key pairs in first-seen order
func (r *ReplacementMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalYAML renders the map as an ordered list of text/key entries
func (r *ReplacementMap) MarshalYAML() (any, error) {
	type entry struct {
		Text string `yaml:"text"`
		Key  string `yaml:"key"`
	}
	out := make([]entry, 0, r.Len())
	for text, key := range r.All() {
		out = append(out, entry{Text: text, Key: key})
	}
	return out, nil
}
