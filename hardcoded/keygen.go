package hardcoded

import (
	"fmt"
	"iter"

	"github.com/napalu/ngx-i18n-scan/catalog"
	"github.com/napalu/ngx-i18n-scan/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Assignment records the key chosen for the first occurrence of a text.
// Index is the 1-based position of that occurrence among all occurrences.
type Assignment struct {
	Index      int        `yaml:"index"`
	Occurrence Occurrence `yaml:"occurrence"`
	Key        string     `yaml:"key"`
	Reused     bool       `yaml:"reused"`
}

// KeyGenerator assigns translation keys to detected texts, reusing catalog
// keys whose value matches and keeping generated keys unique within a run.
type KeyGenerator struct {
	catalog      *catalog.Catalog
	prefix       string
	assigned     map[string]bool
	replacements *ReplacementMap
	staged       *orderedmap.OrderedMap[string, string]
}

// NewKeyGenerator returns a generator checking keys against c
func NewKeyGenerator(c *catalog.Catalog) *KeyGenerator {
	return &KeyGenerator{
		catalog:      c,
		prefix:       util.KeyPrefix,
		assigned:     make(map[string]bool),
		replacements: NewReplacementMap(),
		staged:       orderedmap.New[string, string](),
	}
}

// Assign walks occurrences in order and returns an assignment for every text
// seen for the first time. Later occurrences of a text reuse its key.
func (g *KeyGenerator) Assign(occurrences []Occurrence) []Assignment {
	var out []Assignment
	for i, o := range occurrences {
		if _, seen := g.replacements.Lookup(o.Text); seen {
			continue
		}
		key, reused := g.KeyFor(o.Text)
		out = append(out, Assignment{Index: i + 1, Occurrence: o, Key: key, Reused: reused})
	}
	return out
}

// KeyFor returns the key for text, choosing one on first use. reused is set
// when the key came from the catalog.
func (g *KeyGenerator) KeyFor(text string) (key string, reused bool) {
	if key, ok := g.replacements.Lookup(text); ok {
		return key, g.catalogHolds(key, text)
	}

	key, reused = g.catalog.FindKeyByValue(text, func(k string) bool { return g.assigned[k] })
	if !reused {
		base := util.GenerateKeyFromString(g.prefix, text)
		key = base
		for suffix := 1; g.taken(key, text); suffix++ {
			key = fmt.Sprintf("%s.%d", base, suffix)
		}
	}

	g.assigned[key] = true
	g.replacements.Set(text, key)
	g.staged.Set(key, text)
	return key, reused
}

// taken reports whether key already holds another value or was handed out
func (g *KeyGenerator) taken(key, text string) bool {
	if g.assigned[key] {
		return true
	}
	v, ok := g.catalog.Get(key)
	if !ok {
		return false
	}
	s, isString := v.(string)
	return !isString || s != text
}

func (g *KeyGenerator) catalogHolds(key, text string) bool {
	v, ok := g.catalog.GetString(key)
	return ok && v == text
}

// Replacements returns the text to key map built so far
func (g *KeyGenerator) Replacements() *ReplacementMap {
	return g.replacements
}

// Staged yields the key, text pairs waiting to be merged into the catalog
func (g *KeyGenerator) Staged() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for pair := g.staged.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Merge writes the staged pairs into the catalog and returns how many keys
// were added or changed.
func (g *KeyGenerator) Merge() int {
	changed := 0
	for key, text := range g.Staged() {
		if g.catalogHolds(key, text) {
			continue
		}
		g.catalog.Set(key, text)
		changed++
	}
	return changed
}
