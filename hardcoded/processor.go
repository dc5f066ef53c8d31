package hardcoded

import (
	"strings"

	"github.com/napalu/ngx-i18n-scan/ast"
	"github.com/napalu/ngx-i18n-scan/catalog"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/markup"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Options selects what the processor does beyond detection
type Options struct {
	DetectHardcoded  bool
	ReplaceHardcoded bool
	DryRun           bool
	Backup           *util.BackupSession
}

// Status is the outcome of rewriting one file
type Status string

// Rewrite outcomes
const (
	StatusUpdated     Status = "updated"
	StatusUnchanged   Status = "unchanged"
	StatusWouldUpdate Status = "would-update"
	StatusFailed      Status = "failed"
)

// FileOutcome is the rewrite result of one file
type FileOutcome struct {
	File   string `yaml:"file"`
	Status Status `yaml:"status"`
	Err    error  `yaml:"-"`
}

// Result is what one hardcoded-text run found and changed
type Result struct {
	Dir          string          `yaml:"dir"`
	Occurrences  []Occurrence    `yaml:"occurrences"`
	Assignments  []Assignment    `yaml:"assignments"`
	Replacements *ReplacementMap `yaml:"replacements"`
	Files        []FileOutcome   `yaml:"files,omitempty"`
	// Added counts catalog keys added or changed by the merge
	Added    int  `yaml:"added"`
	Replaced bool `yaml:"replaced"`
}

// Count returns how many files ended with status s
func (r *Result) Count(s Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Processor runs detection, key assignment, rewriting and the catalog merge
type Processor struct {
	fs       afero.Fs
	detector *Detector
	markup   *markup.Scanner
	rewriter *ast.Rewriter
	log      zerolog.Logger
}

// NewProcessor wires the detector and rewriters sharing the given scanners
func NewProcessor(fs afero.Fs, m *markup.Scanner, c *ast.Scanner, r *ast.Rewriter, log zerolog.Logger) *Processor {
	return &Processor{
		fs:       fs,
		detector: NewDetector(fs, m, c, log),
		markup:   m,
		rewriter: r,
		log:      log,
	}
}

// Detector returns the processor's detector
func (p *Processor) Detector() *Detector {
	return p.detector
}

// Process detects hardcoded text below the app directory of srcPath and
// assigns keys against c. With ReplaceHardcoded the sources are rewritten and
// the assigned keys merged into c; saving c is left to the caller. A file
// that fails to rewrite is recorded and the others still run.
func (p *Processor) Process(srcPath string, c *catalog.Catalog, opts Options) (*Result, error) {
	if !opts.DetectHardcoded {
		return nil, nil
	}
	dir := AppDir(p.fs, srcPath)
	occurrences, err := p.detector.Detect(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{Dir: dir, Occurrences: occurrences, Replacements: NewReplacementMap()}
	if len(occurrences) == 0 {
		return res, nil
	}

	gen := NewKeyGenerator(c)
	res.Assignments = gen.Assign(occurrences)
	res.Replacements = gen.Replacements()
	if !opts.ReplaceHardcoded {
		return res, nil
	}

	grouped := groupByFile(occurrences)
	for pair := grouped.Oldest(); pair != nil; pair = pair.Next() {
		res.Files = append(res.Files, p.rewriteFile(pair.Key, pair.Value, res.Replacements, opts))
	}
	res.Added = gen.Merge()
	res.Replaced = true
	return res, nil
}

// ProcessHardcodedText runs Process against the catalog at catalogPath and
// saves the catalog when sources were rewritten.
func (p *Processor) ProcessHardcodedText(srcPath, catalogPath string, opts Options, save catalog.SaveOptions) (*Result, error) {
	c, err := catalog.Load(p.fs, catalogPath)
	if err != nil {
		return nil, err
	}
	res, err := p.Process(srcPath, c, opts)
	if err != nil || res == nil {
		return res, err
	}
	if res.Replaced && !opts.DryRun {
		if err := c.Save(p.fs, save); err != nil {
			return res, err
		}
	}
	return res, nil
}

// groupByFile lists the distinct texts of each file, files and texts in
// first-seen order
func groupByFile(occurrences []Occurrence) *orderedmap.OrderedMap[string, []string] {
	grouped := orderedmap.New[string, []string]()
	seen := make(map[Occurrence]bool)
	for _, o := range occurrences {
		k := Occurrence{File: o.File, Text: o.Text}
		if seen[k] {
			continue
		}
		seen[k] = true
		texts, _ := grouped.Get(o.File)
		grouped.Set(o.File, append(texts, o.Text))
	}
	return grouped
}

func (p *Processor) rewriteFile(file string, texts []string, repl *ReplacementMap, opts Options) FileOutcome {
	log := p.log.With().Str("file", file).Logger()
	src, err := afero.ReadFile(p.fs, file)
	if err != nil {
		return FileOutcome{File: file, Status: StatusFailed, Err: errors.ErrReadFile.WithArgs(file).Wrap(err)}
	}

	var (
		out     []byte
		changed bool
	)
	switch {
	case strings.HasSuffix(file, MarkupSuffix):
		out, changed = p.markup.Rewrite(src, texts, repl.Lookup)
	case strings.HasSuffix(file, ComponentSuffix):
		out, changed, err = p.rewriter.Rewrite(file, src, repl.Lookup)
		if err != nil {
			log.Warn().Err(err).Msg("rewrite failed")
			return FileOutcome{File: file, Status: StatusFailed, Err: err}
		}
	}

	if !changed {
		return FileOutcome{File: file, Status: StatusUnchanged}
	}
	if opts.DryRun {
		return FileOutcome{File: file, Status: StatusWouldUpdate}
	}
	if _, err := opts.Backup.Backup(file); err != nil {
		return FileOutcome{File: file, Status: StatusFailed, Err: err}
	}
	if err := util.WriteFileAtomic(p.fs, file, out); err != nil {
		return FileOutcome{File: file, Status: StatusFailed, Err: errors.ErrWriteFile.WithArgs(file).Wrap(err)}
	}
	log.Debug().Msg("rewritten")
	return FileOutcome{File: file, Status: StatusUpdated}
}
