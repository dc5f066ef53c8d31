package translations

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/ngx-i18n-scan/catalog"
	errs "github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/options"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const (
	homeHTML = `<h1>{{ 'home.title' | translate }}</h1>
<p>{{ 'home.intro' | translate }}</p>
<button>Sign in</button>
`
	homeTS = `import { Component } from '@angular/core';

@Component({
  selector: 'app-home',
  templateUrl: './home.component.html',
})
export class HomeComponent {
  fail(): void {
    alert({ title: "Oops" });
  }
}
`
	enJSON = `{
  "home": {
    "title": "Home"
  },
  "old": {
    "key": "Old"
  }
}
`
)

var (
	srcDir      = filepath.Join("proj", "src")
	htmlPath    = filepath.Join(srcDir, "app", "home", "home.component.html")
	tsPath      = filepath.Join(srcDir, "app", "home", "home.component.ts")
	catalogPath = filepath.Join(srcDir, "assets", "i18n", "en.json")
)

func newTranslator(t *testing.T) i18n.Translator {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "locales", "en.json"))
	require.NoError(t, err)
	var translations map[string]string
	require.NoError(t, json.Unmarshal(data, &translations))

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	require.NoError(t, bundle.AddLanguage(language.English, translations))
	return bundle
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func projectFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		htmlPath:    homeHTML,
		tsPath:      homeTS,
		catalogPath: enJSON,
	})
	return fs
}

func testEnv(fs afero.Fs) (Env, *bytes.Buffer) {
	color.NoColor = true
	var out bytes.Buffer
	return Env{Fs: fs, Dir: "proj", Out: &out, In: strings.NewReader(""), Log: io.Discard}, &out
}

func testConfig(t *testing.T, scan options.ScanCmd) *options.AppConfig {
	return &options.AppConfig{
		Src:       srcDir,
		BackupDir: ".backup",
		Scan:      scan,
		TR:        newTranslator(t),
	}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestRunScan(t *testing.T) {
	fs := projectFs(t)
	env, out := testEnv(fs)
	cfg := testConfig(t, options.ScanCmd{
		AddMissing:       true,
		RemoveUnused:     true,
		ListUnused:       true,
		DetectHardcoded:  true,
		ReplaceHardcoded: true,
	})
	cfg.Report = filepath.Join("proj", "report.yaml")

	require.NoError(t, RunScan(cfg, env))

	c, err := catalog.Load(fs, catalogPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"home.title", "home.intro", "text.sign.in", "text.oops"}, c.Keys())
	intro, _ := c.GetString("home.intro")
	assert.Equal(t, catalog.MissingValue, intro)
	signIn, _ := c.GetString("text.sign.in")
	assert.Equal(t, "Sign in", signIn)
	assert.False(t, c.Has("old.key"))

	assert.Contains(t, readFile(t, fs, htmlPath), "<button>{{ 'text.sign.in' | translate }}</button>")
	assert.Contains(t, readFile(t, fs, tsPath), "alert({ title: this.translateService.instant('text.oops') });")

	text := out.String()
	assert.Contains(t, text, "Using translation file: "+catalogPath)
	assert.Contains(t, text, "Extracted 2 key(s) from source.")
	assert.Contains(t, text, "🧹 Unused keys:\n - old.key\n")
	assert.Contains(t, text, "Found 2 hardcoded string(s):")
	assert.Contains(t, text, "Updated file: "+catalogPath)
	assert.Contains(t, text, "Report written to")

	yml := readFile(t, fs, cfg.Report)
	assert.Contains(t, yml, "catalog: "+catalogPath)
	assert.Contains(t, yml, "key: text.oops")

	entries, err := afero.ReadDir(fs, ".backup")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunScanIsIdempotent(t *testing.T) {
	fs := projectFs(t)
	env, _ := testEnv(fs)
	cfg := testConfig(t, options.ScanCmd{AddMissing: true, DetectHardcoded: true, ReplaceHardcoded: true})
	cfg.NoBackup = true

	require.NoError(t, RunScan(cfg, env))
	html := readFile(t, fs, htmlPath)
	ts := readFile(t, fs, tsPath)
	saved := readFile(t, fs, catalogPath)

	env, out := testEnv(fs)
	require.NoError(t, RunScan(cfg, env))
	assert.Equal(t, html, readFile(t, fs, htmlPath))
	assert.Equal(t, ts, readFile(t, fs, tsPath))
	assert.Equal(t, saved, readFile(t, fs, catalogPath))
	assert.Contains(t, out.String(), "No hardcoded text found.")

	_, err := fs.Stat(".backup")
	assert.True(t, os.IsNotExist(err))
}

func TestRunScanDryRun(t *testing.T) {
	fs := projectFs(t)
	env, out := testEnv(fs)
	cfg := testConfig(t, options.ScanCmd{
		AddMissing:       true,
		DetectHardcoded:  true,
		ReplaceHardcoded: true,
		DryRun:           true,
	})

	require.NoError(t, RunScan(cfg, env))

	assert.Equal(t, enJSON, readFile(t, fs, catalogPath))
	assert.Equal(t, homeHTML, readFile(t, fs, htmlPath))
	assert.Equal(t, homeTS, readFile(t, fs, tsPath))
	assert.Contains(t, out.String(), "Would update "+htmlPath)
	assert.Contains(t, out.String(), "Dry run, "+catalogPath+" was not written.")
}

func TestRunScanListOnlyLeavesCatalog(t *testing.T) {
	fs := projectFs(t)
	env, out := testEnv(fs)
	cfg := testConfig(t, options.ScanCmd{ListMissing: true, ListUnused: true, DetectHardcoded: true})

	require.NoError(t, RunScan(cfg, env))

	assert.Equal(t, enJSON, readFile(t, fs, catalogPath))
	assert.Equal(t, homeHTML, readFile(t, fs, htmlPath))
	text := out.String()
	assert.Contains(t, text, "➕ Missing keys:\n - home.intro\n")
	assert.Contains(t, text, "Use --replace-hardcoded")
	assert.NotContains(t, text, "Updated file")
}

func TestRunScanFlatCatalog(t *testing.T) {
	fs := projectFs(t)
	env, _ := testEnv(fs)
	cfg := testConfig(t, options.ScanCmd{RemoveUnused: true})
	cfg.FlatCatalog = true

	require.NoError(t, RunScan(cfg, env))
	assert.Equal(t, "{\n  \"home.title\": \"Home\"\n}\n", readFile(t, fs, catalogPath))
}

func TestRunScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fs afero.Fs, cfg *options.AppConfig)
		wantErr error
	}{
		{
			name:    "missing source",
			setup:   func(_ afero.Fs, cfg *options.AppConfig) { cfg.Src = "nowhere" },
			wantErr: errs.ErrSourceNotFound,
		},
		{
			name:    "explicit catalog missing",
			setup:   func(_ afero.Fs, cfg *options.AppConfig) { cfg.Json = "proj/missing.json" },
			wantErr: errs.ErrCatalogNotFound,
		},
		{
			name: "malformed catalog",
			setup: func(fs afero.Fs, _ *options.AppConfig) {
				_ = afero.WriteFile(fs, catalogPath, []byte(`{"home": `), 0o644)
			},
			wantErr: errs.ErrCatalogParse,
		},
		{
			name:    "no catalog found",
			setup:   func(fs afero.Fs, _ *options.AppConfig) { _ = fs.Remove(catalogPath) },
			wantErr: errs.ErrNoCatalogFound,
		},
		{
			name: "several catalogs without terminal",
			setup: func(fs afero.Fs, _ *options.AppConfig) {
				_ = afero.WriteFile(fs, filepath.Join(srcDir, "assets", "i18n", "de.json"), []byte(`{}`), 0o644)
			},
			wantErr: errs.ErrMultipleCatalogs,
		},
		{
			name:    "invalid html mode",
			setup:   func(_ afero.Fs, cfg *options.AppConfig) { cfg.Scan.HtmlMode = "inline" },
			wantErr: errs.ErrInvalidHTMLMode,
		},
		{
			name:    "invalid log level",
			setup:   func(_ afero.Fs, cfg *options.AppConfig) { cfg.LogLevel = "loud" },
			wantErr: errs.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := projectFs(t)
			env, _ := testEnv(fs)
			cfg := testConfig(t, options.ScanCmd{AddMissing: true, DetectHardcoded: true, ReplaceHardcoded: true})
			tt.setup(fs, cfg)

			err := RunScan(cfg, env)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, homeHTML, readFile(t, fs, htmlPath))
			assert.Equal(t, homeTS, readFile(t, fs, tsPath))
		})
	}
}

func TestHandlersRequireConfig(t *testing.T) {
	parser := goopt.NewParser()
	for name, handler := range map[string]goopt.CommandFunc{"scan": Scan, "keys": Keys, "catalogs": Catalogs} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(handler(parser, nil), errs.ErrFailedToGetConfig))
		})
	}
}
