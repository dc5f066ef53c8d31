package catalog

// MissingValue is the placeholder written for keys added by AddMissing
const MissingValue = "TODO"

// DiffOptions selects the reconciliation operations
type DiffOptions struct {
	AddMissing       bool
	ListMissing      bool
	RemoveUnused     bool
	ListUnused       bool
	RemoveDuplicates bool
	ListDuplicates   bool
}

// Mutates reports whether the options require the catalog to be written
func (o DiffOptions) Mutates() bool {
	return o.AddMissing || o.RemoveUnused || o.RemoveDuplicates
}

// DiffResult holds the key sets of a source/catalog comparison. Missing and
// Present follow source-key order, Unused follows catalog order.
type DiffResult struct {
	Missing    []string    `yaml:"missing"`
	Unused     []string    `yaml:"unused"`
	Present    []string    `yaml:"present"`
	Duplicates []Duplicate `yaml:"duplicates"`
}

// AppliedChanges counts what Apply did to the catalog
type AppliedChanges struct {
	Added             int `yaml:"added"`
	Removed           int `yaml:"removed"`
	DuplicatesRemoved int `yaml:"duplicates_removed"`
}

// Compare computes present, missing, unused and duplicate keys of c against
// the keys found in source.
func Compare(sourceKeys []string, c *Catalog) *DiffResult {
	res := &DiffResult{
		Missing:    []string{},
		Unused:     []string{},
		Present:    []string{},
		Duplicates: c.Duplicates(),
	}

	inSource := make(map[string]struct{}, len(sourceKeys))
	for _, k := range sourceKeys {
		inSource[k] = struct{}{}
		if c.Has(k) {
			res.Present = append(res.Present, k)
		} else {
			res.Missing = append(res.Missing, k)
		}
	}
	for _, k := range c.Keys() {
		if _, ok := inSource[k]; !ok {
			res.Unused = append(res.Unused, k)
		}
	}
	return res
}

// Apply performs the mutating options on c. Duplicates are already collapsed
// when the file is parsed, so removing them only requires the file to be saved.
func (r *DiffResult) Apply(c *Catalog, opts DiffOptions) AppliedChanges {
	var changes AppliedChanges
	if opts.RemoveUnused {
		for _, k := range r.Unused {
			if c.Delete(k) {
				changes.Removed++
			}
		}
	}
	if opts.RemoveDuplicates {
		changes.DuplicatesRemoved = len(r.Duplicates)
	}
	if opts.AddMissing {
		for _, k := range r.Missing {
			if !c.Has(k) {
				c.Set(k, MissingValue)
				changes.Added++
			}
		}
	}
	return changes
}
