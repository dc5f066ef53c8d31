package hardcoded

import (
	"testing"

	"github.com/napalu/ngx-i18n-scan/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, data string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse("en.json", []byte(data))
	require.NoError(t, err)
	return c
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name     string
		catalog  string
		texts    []string
		expected []string
	}{
		{
			name:     "base keys",
			catalog:  `{}`,
			texts:    []string{"Enter name", "Hello World"},
			expected: []string{"text.enter.name", "text.hello.world"},
		},
		{
			name:     "texts normalising to the same base",
			catalog:  `{}`,
			texts:    []string{"Save!", "Save?", "save"},
			expected: []string{"text.save", "text.save.1", "text.save.2"},
		},
		{
			name:     "catalog value reused",
			catalog:  `{"text": {"hello": "Hello"}}`,
			texts:    []string{"Hello"},
			expected: []string{"text.hello"},
		},
		{
			name:     "reuse is not limited to generated keys",
			catalog:  `{"greeting": "Hello"}`,
			texts:    []string{"Hello"},
			expected: []string{"greeting"},
		},
		{
			name:     "base key holding another value",
			catalog:  `{"text.save": "Store", "text.save.1": "Keep"}`,
			texts:    []string{"Save"},
			expected: []string{"text.save.2"},
		},
		{
			name:     "same text repeated keeps its key",
			catalog:  `{}`,
			texts:    []string{"Cancel", "Cancel"},
			expected: []string{"text.cancel", "text.cancel"},
		},
		{
			name:     "non string value blocks the key",
			catalog:  `{"text": {"count": 3}}`,
			texts:    []string{"Count"},
			expected: []string{"text.count.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewKeyGenerator(mustCatalog(t, tt.catalog))
			var got []string
			for _, text := range tt.texts {
				key, _ := g.KeyFor(text)
				got = append(got, key)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKeyForTextWithoutUsableCharacters(t *testing.T) {
	g := NewKeyGenerator(mustCatalog(t, `{}`))
	first, _ := g.KeyFor("!!!")
	second, _ := g.KeyFor("???")
	assert.Regexp(t, `^text\.x[0-9a-f]{8}$`, first)
	assert.Regexp(t, `^text\.x[0-9a-f]{8}$`, second)
	assert.NotEqual(t, first, second)
}

func TestAssignSkipsRepeatedTexts(t *testing.T) {
	g := NewKeyGenerator(mustCatalog(t, `{"text.hello": "Hello"}`))
	occurrences := []Occurrence{
		{File: "a.html", Line: 1, Text: "Hello"},
		{File: "a.html", Line: 2, Text: "Save!"},
		{File: "b.html", Line: 1, Text: "Hello"},
		{File: "b.html", Line: 3, Text: "Save?"},
	}

	got := g.Assign(occurrences)
	assert.Equal(t, []Assignment{
		{Index: 1, Occurrence: occurrences[0], Key: "text.hello", Reused: true},
		{Index: 2, Occurrence: occurrences[1], Key: "text.save"},
		{Index: 4, Occurrence: occurrences[3], Key: "text.save.1"},
	}, got)

	var texts, keys []string
	for text, key := range g.Replacements().All() {
		texts = append(texts, text)
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"Hello", "Save!", "Save?"}, texts)
	assert.Equal(t, []string{"text.hello", "text.save", "text.save.1"}, keys)
}

func TestGeneratedKeysAreUnique(t *testing.T) {
	g := NewKeyGenerator(mustCatalog(t, `{"text.ok.go": "Other"}`))
	texts := []string{"OK go", "ok go!", "Ok, go", "OK GO?", "ok  go", "Ok-go"}
	seen := make(map[string]string)
	for _, text := range texts {
		key, _ := g.KeyFor(text)
		prev, dup := seen[key]
		assert.False(t, dup, "%q and %q share key %s", prev, text, key)
		seen[key] = text
	}
}

func TestMerge(t *testing.T) {
	c := mustCatalog(t, `{"text": {"hello": "Hello"}}`)
	g := NewKeyGenerator(c)
	g.KeyFor("Hello")
	g.KeyFor("Enter name")

	assert.Equal(t, 1, g.Merge())
	v, ok := c.GetString("text.enter.name")
	assert.True(t, ok)
	assert.Equal(t, "Enter name", v)
	assert.Equal(t, []string{"text.hello", "text.enter.name"}, c.Keys())

	assert.Equal(t, 0, g.Merge(), "merging twice changes nothing")
}
