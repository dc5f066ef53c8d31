package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	c, err := Parse("en.json", []byte(`{
  "text": {"hello": "Hello", "old": "Old", "bye": "Bye"},
  "text.bye": "Bye again"
}`))
	require.NoError(t, err)

	res := Compare([]string{"text.bye", "text.hello", "text.new"}, c)

	assert.Equal(t, []string{"text.bye", "text.hello"}, res.Present)
	assert.Equal(t, []string{"text.new"}, res.Missing)
	assert.Equal(t, []string{"text.old"}, res.Unused)
	assert.Equal(t, []Duplicate{{Key: "text.bye", Count: 2}}, res.Duplicates)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		opts     DiffOptions
		wantKeys []string
		changes  AppliedChanges
	}{
		{
			name:     "list only",
			opts:     DiffOptions{ListMissing: true, ListUnused: true},
			wantKeys: []string{"text.hello", "text.old"},
		},
		{
			name:     "add missing",
			opts:     DiffOptions{AddMissing: true},
			wantKeys: []string{"text.hello", "text.old", "text.new"},
			changes:  AppliedChanges{Added: 1},
		},
		{
			name:     "remove unused",
			opts:     DiffOptions{RemoveUnused: true},
			wantKeys: []string{"text.hello"},
			changes:  AppliedChanges{Removed: 1},
		},
		{
			name:     "all mutations",
			opts:     DiffOptions{AddMissing: true, RemoveUnused: true, RemoveDuplicates: true},
			wantKeys: []string{"text.hello", "text.new"},
			changes:  AppliedChanges{Added: 1, Removed: 1, DuplicatesRemoved: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse("en.json", []byte(`{"text":{"hello":"Hello","hello":"Hi","old":"Old"}}`))
			require.NoError(t, err)

			res := Compare([]string{"text.hello", "text.new"}, c)
			changes := res.Apply(c, tt.opts)

			assert.Equal(t, tt.wantKeys, c.Keys())
			assert.Equal(t, tt.changes, changes)
			assert.Equal(t, tt.opts.AddMissing || tt.opts.RemoveUnused || tt.opts.RemoveDuplicates, tt.opts.Mutates())
			if tt.opts.AddMissing {
				v, _ := c.GetString("text.new")
				assert.Equal(t, MissingValue, v)
			}
		})
	}
}
