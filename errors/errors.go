package errors

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/ngx-i18n-scan/messages"
)

var (
	// ErrFailedToGetConfig is returned when the command context does not carry an AppConfig
	ErrFailedToGetConfig = i18n.NewError(messages.Keys.AppError.FailedToGetConfig)

	// ErrSourceNotFound is returned when the source directory does not exist
	ErrSourceNotFound = i18n.NewError(messages.Keys.AppError.SourceNotFound)

	// ErrCatalogNotFound is returned when the translation file does not exist
	ErrCatalogNotFound = i18n.NewError(messages.Keys.AppError.CatalogNotFound)

	// ErrCatalogRead is returned when the translation file cannot be read
	ErrCatalogRead = i18n.NewError(messages.Keys.AppError.CatalogRead)

	// ErrCatalogParse is returned when the translation file is not valid JSON
	ErrCatalogParse = i18n.NewError(messages.Keys.AppError.CatalogParse)

	// ErrCatalogNotObject is returned when the translation file root is not a JSON object
	ErrCatalogNotObject = i18n.NewError(messages.Keys.AppError.CatalogNotObject)

	// ErrCatalogWrite is returned when the translation file cannot be written
	ErrCatalogWrite = i18n.NewError(messages.Keys.AppError.CatalogWrite)

	// ErrNoCatalogFound is returned when catalog discovery finds no translation file
	ErrNoCatalogFound = i18n.NewError(messages.Keys.AppError.NoCatalogFound)

	// ErrMultipleCatalogs is returned when discovery is ambiguous and no prompt is possible
	ErrMultipleCatalogs = i18n.NewError(messages.Keys.AppError.MultipleCatalogs)

	// ErrInvalidSelection is returned when the catalog prompt receives an unusable answer
	ErrInvalidSelection = i18n.NewError(messages.Keys.AppError.InvalidSelection)

	// ErrParseSource is returned when a source file cannot be parsed
	ErrParseSource = i18n.NewError(messages.Keys.AppError.ParseSource)

	// ErrRewriteSyntax is returned when a rewrite would leave a component with syntax errors
	ErrRewriteSyntax = i18n.NewError(messages.Keys.AppError.RewriteSyntax)

	// ErrOverlappingEdits is returned when two edits of one file intersect
	ErrOverlappingEdits = i18n.NewError(messages.Keys.AppError.OverlappingEdits)

	// ErrReadFile is returned when a source file cannot be read
	ErrReadFile = i18n.NewError(messages.Keys.AppError.ReadFile)

	// ErrWriteFile is returned when a source file cannot be written
	ErrWriteFile = i18n.NewError(messages.Keys.AppError.WriteFile)

	// ErrBackupFailed is returned when a backup copy cannot be created
	ErrBackupFailed = i18n.NewError(messages.Keys.AppError.BackupFailed)

	// ErrWalkFailed is returned when a directory cannot be traversed
	ErrWalkFailed = i18n.NewError(messages.Keys.AppError.WalkFailed)

	// ErrReportWrite is returned when the YAML report cannot be written
	ErrReportWrite = i18n.NewError(messages.Keys.AppError.ReportWrite)

	// ErrInvalidRcFile is returned when the defaults file cannot be split into arguments
	ErrInvalidRcFile = i18n.NewError(messages.Keys.AppError.InvalidRcFile)

	// ErrInvalidHTMLMode is returned for an unknown --html-mode value
	ErrInvalidHTMLMode = i18n.NewError(messages.Keys.AppError.InvalidHtmlMode)

	// ErrInvalidLogLevel is returned for an unknown --log-level value
	ErrInvalidLogLevel = i18n.NewError(messages.Keys.AppError.InvalidLogLevel)
)

// Format renders err through tr. A translatable error is rendered from its key
// and arguments, followed by its wrapped cause; anything else via Error().
func Format(tr i18n.Translator, err error) string {
	if err == nil {
		return ""
	}
	te, ok := err.(i18n.TranslatableError)
	if !ok {
		return err.Error()
	}
	msg := tr.T(te.Key(), te.Args()...)
	if wrapped := te.Unwrap(); wrapped != nil {
		return msg + ": " + Format(tr, wrapped)
	}
	return msg
}
