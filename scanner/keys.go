// Package scanner extracts translation keys already referenced by templates
// and component classes.
package scanner

import (
	"regexp"
	"sort"

	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const keyChars = "[a-zA-Z0-9_.-]+"

// keyPatterns match the ways a key reaches the translation pipe or service.
// Every capture group holds a key.
var keyPatterns = []*regexp.Regexp{
	// {{ 'key' | translate }}
	regexp.MustCompile("['\"`](" + keyChars + ")['\"`]\\s*\\|\\s*translate"),
	// this.translate.get('key'), translateService.get("key")
	regexp.MustCompile("[\\w$.]*translate\\w*\\s*\\.\\s*get\\s*\\(\\s*['\"`](" + keyChars + ")['\"`]\\s*\\)"),
	// translate.instant('key')
	regexp.MustCompile("[\\w$.]*translate\\w*\\s*\\.\\s*instant\\s*\\(\\s*['\"`](" + keyChars + ")['\"`]\\s*\\)"),
	// (cond ? 'key1' : 'key2') | translate
	regexp.MustCompile("\\(\\s*[^?]+?\\s*\\?\\s*['\"`](" + keyChars + ")['\"`]\\s*:\\s*['\"`](" + keyChars + ")['\"`]\\s*\\)\\s*\\|\\s*translate"),
}

// SourceExtensions are the file types searched for keys
var SourceExtensions = []string{".ts", ".html"}

// KeysInContent returns every key referenced in content, in match order
func KeysInContent(content []byte) []string {
	var keys []string
	for _, re := range keyPatterns {
		for _, m := range re.FindAllSubmatch(content, -1) {
			for _, group := range m[1:] {
				if len(group) > 0 {
					keys = append(keys, string(group))
				}
			}
		}
	}
	return keys
}

// Extractor collects keys from a source tree
type Extractor struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewExtractor creates an Extractor reading from fs
func NewExtractor(fs afero.Fs, log zerolog.Logger) *Extractor {
	return &Extractor{fs: fs, log: log}
}

// ExtractKeysFromSource returns the sorted, de-duplicated keys used by the
// .ts and .html files below srcDir. Unreadable files are logged and skipped.
func (e *Extractor) ExtractKeysFromSource(srcDir string) ([]string, error) {
	if !util.IsDir(e.fs, srcDir) {
		return nil, errors.ErrSourceNotFound.WithArgs(srcDir)
	}

	seen := make(map[string]struct{})
	walker := util.NewSourceWalker(e.fs, srcDir, util.HasExtension(SourceExtensions...))
	for path, err := range walker.Files() {
		if err != nil {
			e.log.Warn().Err(err).Str("dir", path).Msg("skipping directory")
			continue
		}
		content, err := afero.ReadFile(e.fs, path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping unreadable file")
			continue
		}
		found := KeysInContent(content)
		if len(found) > 0 {
			e.log.Debug().Str("file", path).Int("keys", len(found)).Msg("keys found")
		}
		for _, k := range found {
			seen[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
