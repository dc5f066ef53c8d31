// Package catalog loads, reconciles and persists translation files.
//
// A catalog is held in memory as an ordered mapping from dot-path key to
// value. Files may be nested or flat; they are written back nested unless
// flat output is requested.
package catalog

import (
	stderrors "errors"
	"iter"
	"strings"

	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/spf13/afero"
)

// Catalog is a translation file flattened to dot-path keys
type Catalog struct {
	Path       string
	entries    *Object
	duplicates []Duplicate
}

// New returns an empty catalog for path
func New(path string) *Catalog {
	return &Catalog{Path: path, entries: NewObject()}
}

// Parse decodes translation JSON. Blank input is an empty catalog.
func Parse(path string, data []byte) (*Catalog, error) {
	c := New(path)
	if strings.TrimSpace(string(data)) == "" {
		return c, nil
	}
	root, dups, err := decodeObject(data)
	if err != nil {
		if stderrors.Is(err, errNotObject) {
			return nil, errors.ErrCatalogNotObject.WithArgs(path)
		}
		return nil, errors.ErrCatalogParse.WithArgs(path).Wrap(err)
	}
	c.entries = NewObject()
	flattenInto(c.entries, root, "", func(key string) {
		for i := range dups {
			if dups[i].Key == key {
				dups[i].Count++
				return
			}
		}
		dups = append(dups, Duplicate{Key: key, Count: 2})
	})
	c.duplicates = dups
	return c, nil
}

// Load reads and parses the translation file at path
func Load(fs afero.Fs, path string) (*Catalog, error) {
	if !util.Exists(fs, path) {
		return nil, errors.ErrCatalogNotFound.WithArgs(path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.ErrCatalogRead.WithArgs(path).Wrap(err)
	}
	return Parse(path, data)
}

// Len returns the number of leaf keys
func (c *Catalog) Len() int {
	return c.entries.Len()
}

// Keys returns all leaf keys in file order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Entries iterates keys and values in file order
func (c *Catalog) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Has reports whether key is a leaf of the catalog
func (c *Catalog) Has(key string) bool {
	_, ok := c.entries.Get(key)
	return ok
}

// Get returns the raw value stored under key
func (c *Catalog) Get(key string) (any, bool) {
	return c.entries.Get(key)
}

// GetString returns the value under key when it is a string
func (c *Catalog) GetString(key string) (string, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set stores value under key. Existing keys keep their position.
func (c *Catalog) Set(key string, value any) {
	c.entries.Set(key, value)
}

// Delete removes key and reports whether it existed
func (c *Catalog) Delete(key string) bool {
	_, ok := c.entries.Delete(key)
	return ok
}

// FindKeyByValue returns the first key in file order whose string value equals
// value and which skip does not reject.
func (c *Catalog) FindKeyByValue(value string, skip func(key string) bool) (string, bool) {
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		s, ok := pair.Value.(string)
		if !ok || s != value {
			continue
		}
		if skip != nil && skip(pair.Key) {
			continue
		}
		return pair.Key, true
	}
	return "", false
}

// Duplicates lists keys that occurred more than once in the loaded file, either
// repeated within one object or spelled both nested and dotted.
func (c *Catalog) Duplicates() []Duplicate {
	return append([]Duplicate(nil), c.duplicates...)
}

// Marshal renders the catalog as indented JSON, nested unless flat is set
func (c *Catalog) Marshal(flat bool) ([]byte, error) {
	if flat {
		return encode(c.entries)
	}
	return encode(Unflatten(c.entries))
}

// SaveOptions controls how a catalog is persisted
type SaveOptions struct {
	Flat   bool
	Backup *util.BackupSession
}

// Save writes the catalog back to its path, backing up the previous content first
func (c *Catalog) Save(fs afero.Fs, opts SaveOptions) error {
	data, err := c.Marshal(opts.Flat)
	if err != nil {
		return errors.ErrCatalogWrite.WithArgs(c.Path).Wrap(err)
	}
	if opts.Backup != nil && util.Exists(fs, c.Path) {
		if _, err := opts.Backup.Backup(c.Path); err != nil {
			return err
		}
	}
	if err := util.WriteFileAtomic(fs, c.Path, data); err != nil {
		return errors.ErrCatalogWrite.WithArgs(c.Path).Wrap(err)
	}
	c.duplicates = nil
	return nil
}
