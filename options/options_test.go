package options

import (
	"errors"
	"testing"

	"github.com/napalu/goopt/v2"
	errs "github.com/napalu/ngx-i18n-scan/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cfg *AppConfig) *goopt.Parser {
	t.Helper()
	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(goopt.ToKebabCase),
		goopt.WithCommandNameConverter(goopt.ToKebabCase))
	require.NoError(t, err)
	return parser
}

func TestDefaults(t *testing.T) {
	cfg := &AppConfig{}
	parser := newParser(t, cfg)
	require.True(t, parser.Parse([]string{"scan"}), parser.GetErrors())

	assert.Equal(t, ".", cfg.Src)
	assert.Equal(t, "", cfg.Json)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ".ngx-i18n-scan-backup", cfg.BackupDir)
	assert.Equal(t, []string{"placeholder"}, cfg.Scan.Attributes)
	assert.Equal(t, "both", cfg.Scan.HtmlMode)
	assert.Equal(t, "TranslateService", cfg.Scan.ServiceSymbol)
	assert.Equal(t, "@ngx-translate/core", cfg.Scan.ServiceModule)
	assert.False(t, cfg.Scan.DryRun)
}

func TestScanFlags(t *testing.T) {
	cfg := &AppConfig{}
	parser := newParser(t, cfg)
	ok := parser.Parse([]string{
		"--src", "web", "-j", "web/src/assets/i18n/en.json", "--flat-catalog",
		"scan", "--add-missing", "--remove-unused", "--list-duplicates",
		"--detect-hardcoded", "--replace-hardcoded", "--dry-run",
		"--dialog-calls", "Swal.fire,this.toast.show",
		"--attributes", "placeholder,title",
		"--html-mode", "aggregate",
	})
	require.True(t, ok, parser.GetErrors())

	assert.Equal(t, "web", cfg.Src)
	assert.Equal(t, "web/src/assets/i18n/en.json", cfg.Json)
	assert.True(t, cfg.FlatCatalog)
	assert.True(t, cfg.Scan.AddMissing)
	assert.True(t, cfg.Scan.RemoveUnused)
	assert.True(t, cfg.Scan.ListDuplicates)
	assert.False(t, cfg.Scan.ListMissing)
	assert.True(t, cfg.Scan.DetectHardcoded)
	assert.True(t, cfg.Scan.ReplaceHardcoded)
	assert.True(t, cfg.Scan.DryRun)
	assert.Equal(t, []string{"Swal.fire", "this.toast.show"}, cfg.Scan.DialogCalls)
	assert.Equal(t, []string{"placeholder", "title"}, cfg.Scan.Attributes)
	assert.Equal(t, "aggregate", cfg.Scan.HtmlMode)
}

func TestLoadRcArgs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"flags", "--src web --no-backup", []string{"--src", "web", "--no-backup"}},
		{"quoted", `--backup-dir "my backups" --report 'run report.yaml'`, []string{"--backup-dir", "my backups", "--report", "run report.yaml"}},
		{"multi-line with comment", "# project defaults\n--src web\n--log-level info\n", []string{"--src", "web", "--log-level", "info"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, RcFile, []byte(tt.content), 0644))

			got, err := LoadRcArgs(fs, RcFile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadRcArgsMissingFile(t *testing.T) {
	got, err := LoadRcArgs(afero.NewMemMapFs(), RcFile)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadRcArgsUnbalancedQuote(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, RcFile, []byte(`--src "web`), 0644))

	_, err := LoadRcArgs(fs, RcFile)
	assert.True(t, errors.Is(err, errs.ErrInvalidRcFile))
}

func TestWithRcArgs(t *testing.T) {
	argv := []string{"ngx-i18n-scan", "--src", "app", "scan"}

	assert.Equal(t, argv, WithRcArgs(argv, nil))
	assert.Equal(t,
		[]string{"ngx-i18n-scan", "--src", "web", "--no-backup", "--src", "app", "scan"},
		WithRcArgs(argv, []string{"--src", "web", "--no-backup"}))
}

func TestRcArgsDoNotOverrideExplicitFlags(t *testing.T) {
	cfg := &AppConfig{}
	parser := newParser(t, cfg)
	args := WithRcArgs([]string{"prog", "--src", "app", "keys"}, []string{"--src", "web", "--no-backup"})

	require.True(t, parser.Parse(args[1:]), parser.GetErrors())
	assert.Equal(t, "app", cfg.Src)
	assert.True(t, cfg.NoBackup)
}
