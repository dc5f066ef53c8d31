// Package report prints run progress and summaries and exports run reports.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/ngx-i18n-scan/catalog"
	errs "github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/hardcoded"
	"github.com/napalu/ngx-i18n-scan/messages"
)

var (
	cyan        = color.New(color.FgCyan).SprintFunc()
	green       = color.New(color.FgGreen).SprintFunc()
	gray        = color.New(color.FgHiBlack).SprintFunc()
	red         = color.New(color.FgRed).SprintFunc()
	blue        = color.New(color.FgBlue).SprintFunc()
	yellow      = color.New(color.FgYellow).SprintFunc()
	boldBlue    = color.New(color.Bold, color.FgBlue).SprintFunc()
	boldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	boldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	magenta     = color.New(color.FgMagenta).SprintFunc()
)

// Reporter writes translated, coloured console output
type Reporter struct {
	w  io.Writer
	tr i18n.Translator
}

// New returns a reporter writing to w
func New(w io.Writer, tr i18n.Translator) *Reporter {
	return &Reporter{w: w, tr: tr}
}

func (r *Reporter) println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

func (r *Reporter) blank() {
	_, _ = fmt.Fprintln(r.w)
}

// Starting announces a scan of src
func (r *Reporter) Starting(src string) {
	r.blank()
	r.println(boldBlue(r.tr.T(messages.Keys.AppScan.Starting)))
	r.blank()
	r.println(gray(r.tr.T(messages.Keys.AppScan.SourceDir)), cyan(src))
}

// UsingCatalog names the translation file of the run
func (r *Reporter) UsingCatalog(path string) {
	r.println(gray(r.tr.T(messages.Keys.AppCatalog.Using)), cyan(path))
}

// Extracting announces the key extraction
func (r *Reporter) Extracting() {
	r.blank()
	r.println(yellow(r.tr.T(messages.Keys.AppScan.Extracting)))
}

// Extracted reports how many source keys were found
func (r *Reporter) Extracted(n int) {
	r.println(green(r.tr.T(messages.Keys.AppScan.Extracted, n)))
}

// Comparing announces the catalog comparison
func (r *Reporter) Comparing() {
	r.blank()
	r.println(yellow(r.tr.T(messages.Keys.AppScan.Comparing)))
}

// Diff prints the requested key lists and what Apply changed
func (r *Reporter) Diff(res *catalog.DiffResult, opts catalog.DiffOptions, changes catalog.AppliedChanges) {
	if opts.ListUnused && len(res.Unused) > 0 {
		r.list(messages.Keys.AppScan.UnusedHeader, res.Unused)
	}
	if opts.ListDuplicates && len(res.Duplicates) > 0 {
		r.blank()
		r.println(r.tr.T(messages.Keys.AppScan.DuplicateHeader))
		for _, d := range res.Duplicates {
			r.println(" -", d.Key, r.tr.T(messages.Keys.AppScan.DuplicateCount, d.Count))
		}
	}
	if opts.ListMissing && len(res.Missing) > 0 {
		r.list(messages.Keys.AppScan.MissingHeader, res.Missing)
	}
	if changes.Removed > 0 {
		r.blank()
		r.println(r.tr.T(messages.Keys.AppScan.RemovedUnused, changes.Removed))
	}
	if changes.DuplicatesRemoved > 0 {
		r.blank()
		r.println(r.tr.T(messages.Keys.AppScan.RemovedDuplicates, changes.DuplicatesRemoved))
	}
	if changes.Added > 0 {
		r.blank()
		r.println(r.tr.T(messages.Keys.AppScan.AddingMissing, changes.Added))
	}
}

func (r *Reporter) list(header string, keys []string) {
	r.blank()
	r.println(r.tr.T(header))
	for _, k := range keys {
		r.println(" -", k)
	}
}

// Summary prints the key counts of a comparison
func (r *Reporter) Summary(res *catalog.DiffResult) {
	r.blank()
	r.println(boldMagenta(r.tr.T(messages.Keys.AppScan.SummaryHeader)))
	r.blank()
	r.println(r.tr.T(messages.Keys.AppScan.SummaryPresent), green(len(res.Present)))
	r.println(r.tr.T(messages.Keys.AppScan.SummaryMissing), blue(len(res.Missing)))
	r.println(r.tr.T(messages.Keys.AppScan.SummaryUnused), yellow(len(res.Unused)))
	r.println(r.tr.T(messages.Keys.AppScan.SummaryDuplicates), red(len(res.Duplicates)))
}

// Completed closes a run
func (r *Reporter) Completed() {
	r.blank()
	r.println(boldGreen(r.tr.T(messages.Keys.AppScan.Completed)))
	r.blank()
}

// ScanningHardcoded announces hardcoded-text detection
func (r *Reporter) ScanningHardcoded() {
	r.blank()
	r.println(yellow(r.tr.T(messages.Keys.AppHardcoded.Scanning)))
}

// Hardcoded prints the key assignments and rewrite outcomes of a run
func (r *Reporter) Hardcoded(res *hardcoded.Result) {
	if res == nil {
		return
	}
	if len(res.Occurrences) == 0 {
		r.println(green(r.tr.T(messages.Keys.AppHardcoded.None)))
		return
	}
	r.println(magenta(r.tr.T(messages.Keys.AppHardcoded.Found, len(res.Occurrences))))
	for _, a := range res.Assignments {
		r.println(fmt.Sprintf("%d.", a.Index), cyan(a.Occurrence.Text), "➜", yellow(a.Key),
			gray(fmt.Sprintf("(%s:%d)", a.Occurrence.File, a.Occurrence.Line)))
	}

	if !res.Replaced {
		r.blank()
		r.println(yellow(r.tr.T(messages.Keys.AppHardcoded.Hint)))
		return
	}
	for _, f := range res.Files {
		switch f.Status {
		case hardcoded.StatusUpdated:
			r.println(blue(r.tr.T(messages.Keys.AppHardcoded.FileUpdated, f.File)))
		case hardcoded.StatusWouldUpdate:
			r.println(blue(r.tr.T(messages.Keys.AppHardcoded.FileWouldUpdate, f.File)))
		case hardcoded.StatusUnchanged:
			r.println(gray(r.tr.T(messages.Keys.AppHardcoded.FileUnchanged, f.File)))
		case hardcoded.StatusFailed:
			r.println(red(r.tr.T(messages.Keys.AppHardcoded.FileFailed, f.File, r.Format(f.Err))))
		}
	}
	r.println(r.tr.T(messages.Keys.AppHardcoded.RewriteSummary,
		res.Count(hardcoded.StatusUpdated)+res.Count(hardcoded.StatusWouldUpdate),
		res.Count(hardcoded.StatusUnchanged), res.Count(hardcoded.StatusFailed)))
	if res.Count(hardcoded.StatusFailed) == 0 {
		r.blank()
		r.println(green(r.tr.T(messages.Keys.AppHardcoded.Replaced)))
	}
}

// CatalogSaved reports a written translation file and its backup
func (r *Reporter) CatalogSaved(path, backupDir string) {
	r.println(green(r.tr.T(messages.Keys.AppCatalog.Updated, path)))
	if backupDir != "" {
		r.println(gray(r.tr.T(messages.Keys.AppCatalog.Backup, backupDir)))
	}
}

// CatalogDryRun reports a translation file left unwritten
func (r *Reporter) CatalogDryRun(path string) {
	r.println(yellow(r.tr.T(messages.Keys.AppCatalog.DryRun, path)))
}

// Keys prints the keys used in src
func (r *Reporter) Keys(src string, keys []string) {
	r.println(boldBlue(r.tr.T(messages.Keys.AppKeys.Header, len(keys), src)))
	for _, k := range keys {
		r.println(" ", k)
	}
}

// Catalogs prints discovered translation files
func (r *Reporter) Catalogs(paths []string) {
	r.println(boldBlue(r.tr.T(messages.Keys.AppCatalogs.Header, len(paths))))
	for _, p := range paths {
		r.println(" ", cyan(p))
	}
}

// ReportWritten names the YAML report file
func (r *Reporter) ReportWritten(path string) {
	r.println(gray(r.tr.T(messages.Keys.AppReport.Written, path)))
}

// Error prints a fatal error
func (r *Reporter) Error(err error) {
	r.println(red("❌ " + r.Format(err)))
}

// Format renders err through the reporter's translator
func (r *Reporter) Format(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimSpace(errs.Format(r.tr, err))
}
