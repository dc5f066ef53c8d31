package report

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/napalu/ngx-i18n-scan/catalog"
	errs "github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/hardcoded"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Failure is a file that could not be rewritten
type Failure struct {
	File  string `yaml:"file"`
	Error string `yaml:"error"`
}

// Run is the exported record of one invocation
type Run struct {
	ID         string                  `yaml:"id"`
	Time       time.Time               `yaml:"time"`
	Source     string                  `yaml:"source"`
	Catalog    string                  `yaml:"catalog,omitempty"`
	SourceKeys int                     `yaml:"source_keys"`
	Diff       *catalog.DiffResult     `yaml:"diff,omitempty"`
	Changes    *catalog.AppliedChanges `yaml:"changes,omitempty"`
	Hardcoded  *hardcoded.Result       `yaml:"hardcoded,omitempty"`
	Failures   []Failure               `yaml:"failures,omitempty"`
}

// NewRun starts a record for a scan of source
func NewRun(source string) *Run {
	return &Run{ID: uuid.NewString(), Time: time.Now().UTC().Truncate(time.Second), Source: source}
}

// SetHardcoded attaches a hardcoded-text result, rendering rewrite errors with format
func (r *Run) SetHardcoded(res *hardcoded.Result, format func(error) string) {
	r.Hardcoded = res
	if res == nil {
		return
	}
	for _, f := range res.Files {
		if f.Status == hardcoded.StatusFailed && f.Err != nil {
			r.Failures = append(r.Failures, Failure{File: f.File, Error: format(f.Err)})
		}
	}
}

// Marshal renders the run as YAML with two-space indentation
func (r *Run) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteYAML writes run to path
func WriteYAML(fs afero.Fs, path string, run *Run) error {
	data, err := run.Marshal()
	if err != nil {
		return errs.ErrReportWrite.WithArgs(path).Wrap(err)
	}
	if err := util.WriteFileAtomic(fs, path, data); err != nil {
		return errs.ErrReportWrite.WithArgs(path).Wrap(err)
	}
	return nil
}
