package translations

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/ngx-i18n-scan/ast"
	"github.com/napalu/ngx-i18n-scan/catalog"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/hardcoded"
	"github.com/napalu/ngx-i18n-scan/markup"
	"github.com/napalu/ngx-i18n-scan/options"
	"github.com/napalu/ngx-i18n-scan/report"
	"github.com/napalu/ngx-i18n-scan/scanner"
	"github.com/napalu/ngx-i18n-scan/util"
)

func Scan(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return errors.ErrFailedToGetConfig
	}
	return RunScan(cfg, OSEnv())
}

// RunScan reconciles the catalog with the keys used in the source tree and
// processes hardcoded text. Input and catalog errors abort before anything
// is written; the catalog is saved at most once, at the end.
func RunScan(cfg *options.AppConfig, env Env) error {
	s, err := newSession(cfg, env)
	if err != nil {
		return err
	}
	scan := cfg.Scan
	fs := env.Fs
	src := s.srcDir()

	mode, err := ast.ParseHTMLMode(scan.HtmlMode)
	if err != nil {
		return err
	}

	s.rep.Starting(src)
	if !util.IsDir(fs, src) {
		return errors.ErrSourceNotFound.WithArgs(src)
	}

	path, err := resolveCatalog(fs, s.workDir(), cfg.Json, s.selector(), s.log)
	if err != nil {
		return err
	}
	s.rep.UsingCatalog(path)

	c, err := catalog.Load(fs, path)
	if err != nil {
		return err
	}

	s.rep.Extracting()
	keys, err := scanner.NewExtractor(fs, s.log).ExtractKeysFromSource(src)
	if err != nil {
		return err
	}
	s.rep.Extracted(len(keys))

	s.rep.Comparing()
	diffOpts := catalog.DiffOptions{
		AddMissing:       scan.AddMissing,
		ListMissing:      scan.ListMissing,
		RemoveUnused:     scan.RemoveUnused,
		ListUnused:       scan.ListUnused,
		RemoveDuplicates: scan.RemoveDuplicates,
		ListDuplicates:   scan.ListDuplicates,
	}
	diff := catalog.Compare(keys, c)
	changes := diff.Apply(c, diffOpts)
	s.rep.Diff(diff, diffOpts, changes)

	run := report.NewRun(src)
	run.Catalog = path
	run.SourceKeys = len(keys)
	run.Diff = diff
	run.Changes = &changes

	backup := s.backup()
	var res *hardcoded.Result
	if scan.DetectHardcoded {
		s.rep.ScanningHardcoded()
		m := markup.NewScanner(scan.Attributes...)
		cs := ast.NewScanner(ast.Config{
			DialogCalls:  scan.DialogCalls,
			UIProperties: scan.UiProperties,
			HTMLMode:     mode,
			Markup:       m,
		})
		rw := ast.NewRewriter(cs, scan.ServiceSymbol, scan.ServiceModule, s.log)
		proc := hardcoded.NewProcessor(fs, m, cs, rw, s.log)

		res, err = proc.Process(src, c, hardcoded.Options{
			DetectHardcoded:  scan.DetectHardcoded,
			ReplaceHardcoded: scan.ReplaceHardcoded,
			DryRun:           scan.DryRun,
			Backup:           backup,
		})
		if err != nil {
			return err
		}
		s.rep.Hardcoded(res)
		run.SetHardcoded(res, s.rep.Format)
	}

	if diffOpts.Mutates() || (res != nil && res.Replaced) {
		if scan.DryRun {
			s.rep.CatalogDryRun(path)
		} else {
			if err := c.Save(fs, catalog.SaveOptions{Flat: cfg.FlatCatalog, Backup: backup}); err != nil {
				return err
			}
			backupDir := ""
			if backup != nil && backup.Used() {
				backupDir = backup.Dir()
			}
			s.rep.CatalogSaved(path, backupDir)
		}
	}

	s.rep.Summary(diff)

	if cfg.Report != "" {
		if err := report.WriteYAML(fs, cfg.Report, run); err != nil {
			return err
		}
		s.rep.ReportWritten(cfg.Report)
	}

	s.rep.Completed()
	return nil
}
