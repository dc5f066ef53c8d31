package main

//go:generate go run github.com/napalu/goopt/v2/cmd/goopt-i18n-gen@latest -i "locales/*.json" validate -s "options/*.go" -g
//go:generate go run github.com/napalu/goopt/v2/cmd/goopt-i18n-gen@latest -i "locales/*.json" generate -o messages/messages.go -p messages

import (
	"embed"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/messages"
	"github.com/napalu/ngx-i18n-scan/options"
	"github.com/napalu/ngx-i18n-scan/translations"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

func main() {
	cfg := &options.AppConfig{}

	// Assign command functions
	cfg.Scan.Exec = translations.Scan
	cfg.Keys.Exec = translations.Keys
	cfg.Catalogs.Exec = translations.Catalogs

	bundle, err := i18n.NewBundleWithFS(localesFS, "locales")
	if err != nil {
		log.Fatalf("Failed to create i18n bundle: %v", err)
	}
	cfg.TR = bundle

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(goopt.ToKebabCase),
		goopt.WithCommandNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		log.Fatalf("Failed to create parser: %v", err)
	}

	rc, err := options.LoadRcArgs(afero.NewOsFs(), options.RcFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(cfg.TR, err))
		os.Exit(1)
	}

	success := parser.Parse(options.WithRcArgs(os.Args, rc))

	if cfg.Language != "" && cfg.Language != bundle.GetDefaultLanguage().String() {
		lang := parseLanguage(cfg.Language)
		if lang != language.Und {
			bundle.SetDefaultLanguage(lang)
			// goopt's own messages come from the system bundle
			i18n.Default().SetDefaultLanguage(lang)
		}
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.ParseError, err))
			fmt.Fprintln(os.Stderr)
		}
		parser.PrintUsageWithGroups(os.Stderr)
		os.Exit(1)
	}

	errCount := parser.ExecuteCommands()
	if errCount > 0 {
		for _, cmdErr := range parser.GetCommandExecutionErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.CommandFailed, cmdErr.Key, errors.Format(cfg.TR, cmdErr.Value)))
			fmt.Fprintln(os.Stderr)
		}
		os.Exit(1)
	}
}

func parseLanguage(lang string) language.Tag {
	switch strings.ToLower(lang) {
	case "en":
		return language.English
	case "de":
		return language.German
	default:
		return language.Und
	}
}
