package options

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
)

// ScanCmd command configuration
type ScanCmd struct {
	AddMissing       bool     `goopt:"short:a;desc:Add missing keys to the translation file;descKey:app.scan_cmd.add_missing_desc"`
	ListMissing      bool     `goopt:"short:m;desc:List keys missing from the translation file;descKey:app.scan_cmd.list_missing_desc"`
	RemoveUnused     bool     `goopt:"short:r;desc:Remove unused keys from the translation file;descKey:app.scan_cmd.remove_unused_desc"`
	ListUnused       bool     `goopt:"short:u;desc:List unused keys of the translation file;descKey:app.scan_cmd.list_unused_desc"`
	RemoveDuplicates bool     `goopt:"short:D;desc:Remove duplicate keys from the translation file;descKey:app.scan_cmd.remove_duplicates_desc"`
	ListDuplicates   bool     `goopt:"short:d;desc:List duplicate keys of the translation file;descKey:app.scan_cmd.list_duplicates_desc"`
	DetectHardcoded  bool     `goopt:"short:t;desc:Detect hardcoded text in templates and components;descKey:app.scan_cmd.detect_hardcoded_desc"`
	ReplaceHardcoded bool     `goopt:"short:R;desc:Replace detected hardcoded text with translation keys;descKey:app.scan_cmd.replace_hardcoded_desc"`
	DialogCalls      []string `goopt:"desc:Dialog calls whose options are user-facing;descKey:app.scan_cmd.dialog_calls_desc"`
	UiProperties     []string `goopt:"desc:Dialog option properties holding user-facing text;descKey:app.scan_cmd.ui_properties_desc"`
	Attributes       []string `goopt:"desc:Template attributes holding user-facing text;default:placeholder;descKey:app.scan_cmd.attributes_desc"`
	HtmlMode         string   `goopt:"desc:How html dialog content is reported (both, aggregate, fragments);default:both;descKey:app.scan_cmd.html_mode_desc"`
	ServiceSymbol    string   `goopt:"desc:Translation service class injected into components;default:TranslateService;descKey:app.scan_cmd.service_symbol_desc"`
	ServiceModule    string   `goopt:"desc:Module the translation service is imported from;default:@ngx-translate/core;descKey:app.scan_cmd.service_module_desc"`
	DryRun           bool     `goopt:"short:n;desc:Show what would change without writing files;descKey:app.scan_cmd.dry_run_desc"`
	Exec             goopt.CommandFunc
}

// KeysCmd command configuration
type KeysCmd struct {
	Exec goopt.CommandFunc
}

// CatalogsCmd command configuration
type CatalogsCmd struct {
	Exec goopt.CommandFunc
}

// AppConfig main application configuration
type AppConfig struct {
	Src         string          `goopt:"short:s;desc:Path to the source directory;default:.;descKey:app.config.src_desc"`
	Json        string          `goopt:"short:j;desc:Path to the translation JSON file (discovered when omitted);descKey:app.config.json_desc"`
	Verbose     bool            `goopt:"short:v;desc:Enable verbose output;descKey:app.config.verbose_desc"`
	Language    string          `goopt:"short:l;desc:Language for output (en, de);descKey:app.config.language_desc"`
	Help        bool            `goopt:"short:h;desc:Show help;descKey:app.config.help_desc"`
	LogLevel    string          `goopt:"desc:Log level (debug, info, warn, error);default:warn;descKey:app.config.log_level_desc"`
	BackupDir   string          `goopt:"desc:Directory for backup files;default:.ngx-i18n-scan-backup;descKey:app.config.backup_dir_desc"`
	NoBackup    bool            `goopt:"desc:Do not back up files before rewriting them;descKey:app.config.no_backup_desc"`
	Report      string          `goopt:"desc:Write a YAML run report to this path;descKey:app.config.report_desc"`
	FlatCatalog bool            `goopt:"desc:Persist the translation file with flat dot-separated keys;descKey:app.config.flat_catalog_desc"`
	Scan        ScanCmd         `goopt:"kind:command;name:scan;desc:Reconcile translation keys and process hardcoded text;descKey:app.config.scan_desc"`
	Keys        KeysCmd         `goopt:"kind:command;name:keys;desc:List translation keys used in the source tree;descKey:app.config.keys_desc"`
	Catalogs    CatalogsCmd     `goopt:"kind:command;name:catalogs;desc:List translation files found in i18n folders;descKey:app.config.catalogs_desc"`
	TR          i18n.Translator `ignore:"true"` // Translator for messages
}
