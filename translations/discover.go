package translations

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/messages"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CatalogDir is the folder name translation files are discovered in
const CatalogDir = "i18n"

func isCatalogFile(path string) bool {
	return filepath.Ext(path) == ".json" &&
		strings.EqualFold(filepath.Base(filepath.Dir(path)), CatalogDir)
}

// FindCatalogs returns the JSON files placed directly in i18n folders below root
func FindCatalogs(fs afero.Fs, root string, log zerolog.Logger) []string {
	var found []string
	for path, err := range util.NewSourceWalker(fs, root, isCatalogFile).Files() {
		if err != nil {
			log.Warn().Err(err).Str("dir", path).Msg("skipping directory")
			continue
		}
		found = append(found, path)
	}
	sort.Strings(found)
	return found
}

// Selector picks one catalog among several candidates
type Selector struct {
	TR          i18n.Translator
	Out         io.Writer
	In          io.Reader
	Interactive bool
}

// Select returns the single candidate, or asks the user to choose when there
// are several and a terminal is attached.
func (s Selector) Select(candidates []string) (string, error) {
	switch {
	case len(candidates) == 0:
		return "", errors.ErrNoCatalogFound
	case len(candidates) == 1:
		return candidates[0], nil
	case !s.Interactive:
		return "", errors.ErrMultipleCatalogs.WithArgs(len(candidates))
	}

	fmt.Fprintln(s.Out, s.TR.T(messages.Keys.AppCatalog.SelectPrompt))
	for i, c := range candidates {
		fmt.Fprintf(s.Out, "  %d) %s\n", i+1, c)
	}
	choice, err := util.ReadChoice(s.Out, s.In, s.TR.T(messages.Keys.AppCatalog.SelectChoice, len(candidates)), len(candidates))
	if err != nil {
		return "", err
	}
	return candidates[choice-1], nil
}

// resolveCatalog returns the explicitly configured catalog, checking it
// exists, or discovers one below dir.
func resolveCatalog(fs afero.Fs, dir, explicit string, sel Selector, log zerolog.Logger) (string, error) {
	if explicit != "" {
		if !util.Exists(fs, explicit) || util.IsDir(fs, explicit) {
			return "", errors.ErrCatalogNotFound.WithArgs(explicit)
		}
		return explicit, nil
	}
	return sel.Select(FindCatalogs(fs, dir, log))
}
