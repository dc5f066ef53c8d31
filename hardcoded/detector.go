package hardcoded

import (
	"iter"
	"path/filepath"

	"github.com/napalu/ngx-i18n-scan/ast"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/markup"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// MarkupSuffix selects template files
	MarkupSuffix = ".html"
	// ComponentSuffix selects component class files
	ComponentSuffix = ".component.ts"
)

// Detector walks a source tree for hardcoded text
type Detector struct {
	fs        afero.Fs
	markup    *markup.Scanner
	component *ast.Scanner
	log       zerolog.Logger
}

// NewDetector returns a detector using the given template and component scanners
func NewDetector(fs afero.Fs, m *markup.Scanner, c *ast.Scanner, log zerolog.Logger) *Detector {
	return &Detector{fs: fs, markup: m, component: c, log: log}
}

// AppDir returns src/app below root when it exists, else root
func AppDir(fs afero.Fs, root string) string {
	app := filepath.Join(root, "src", "app")
	if util.IsDir(fs, app) {
		return app
	}
	return root
}

// HTML yields the occurrences of every template below dir. Each range over the
// sequence walks the tree again. Unreadable files and directories are yielded
// as errors; the walk goes on.
func (d *Detector) HTML(dir string) iter.Seq2[Occurrence, error] {
	return d.occurrences(dir, util.HasSuffix(MarkupSuffix), func(path string, src []byte) ([]Occurrence, error) {
		var out []Occurrence
		for _, c := range d.markup.Scan(src) {
			out = append(out, Occurrence{File: path, Line: c.Line, Text: c.Text})
		}
		return out, nil
	})
}

// TS yields the dialog text occurrences of every component class below dir
func (d *Detector) TS(dir string) iter.Seq2[Occurrence, error] {
	return d.occurrences(dir, util.HasSuffix(ComponentSuffix), func(path string, src []byte) ([]Occurrence, error) {
		findings, err := d.component.Scan(path, src)
		if err != nil {
			return nil, err
		}
		out := make([]Occurrence, 0, len(findings))
		for _, f := range findings {
			out = append(out, Occurrence{File: path, Line: f.Line, Text: f.Text})
		}
		return out, nil
	})
}

// All yields template occurrences followed by component occurrences
func (d *Detector) All(dir string) iter.Seq2[Occurrence, error] {
	return func(yield func(Occurrence, error) bool) {
		for _, seq := range []iter.Seq2[Occurrence, error]{d.HTML(dir), d.TS(dir)} {
			for o, err := range seq {
				if !yield(o, err) {
					return
				}
			}
		}
	}
}

// DetectHardcodedTextInHTML collects the template occurrences below dir
func (d *Detector) DetectHardcodedTextInHTML(dir string) ([]Occurrence, error) {
	return d.collect(dir, d.HTML(dir))
}

// DetectHardcodedTextInTS collects the component occurrences below dir
func (d *Detector) DetectHardcodedTextInTS(dir string) ([]Occurrence, error) {
	return d.collect(dir, d.TS(dir))
}

// Detect collects every occurrence below dir, templates first
func (d *Detector) Detect(dir string) ([]Occurrence, error) {
	return d.collect(dir, d.All(dir))
}

func (d *Detector) collect(dir string, seq iter.Seq2[Occurrence, error]) ([]Occurrence, error) {
	if !util.IsDir(d.fs, dir) {
		return nil, errors.ErrSourceNotFound.WithArgs(dir)
	}
	var out []Occurrence
	for o, err := range seq {
		if err != nil {
			d.log.Warn().Err(err).Msg("skipping")
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (d *Detector) occurrences(dir string, match util.Matcher, scan func(string, []byte) ([]Occurrence, error)) iter.Seq2[Occurrence, error] {
	return func(yield func(Occurrence, error) bool) {
		for path, err := range util.NewSourceWalker(d.fs, dir, match).Files() {
			if err != nil {
				if !yield(Occurrence{File: path}, err) {
					return
				}
				continue
			}
			src, err := afero.ReadFile(d.fs, path)
			if err != nil {
				if !yield(Occurrence{File: path}, errors.ErrReadFile.WithArgs(path).Wrap(err)) {
					return
				}
				continue
			}
			found, err := scan(path, src)
			if err != nil {
				if !yield(Occurrence{File: path}, err) {
					return
				}
				continue
			}
			d.log.Debug().Str("file", path).Int("occurrences", len(found)).Msg("scanned")
			for _, o := range found {
				if !yield(o, nil) {
					return
				}
			}
		}
	}
}
