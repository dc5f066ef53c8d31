package util

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// KeyPrefix is the namespace of generated translation keys
const KeyPrefix = "text"

var (
	nonKeyChars   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace    = regexp.MustCompile(`\s+`)
	constantShape = regexp.MustCompile(`^[A-Z_]+$`)
)

// IsTranslationKey reports whether text already looks like a translation key:
// a generated key or an all-caps constant.
func IsTranslationKey(text string) bool {
	return strings.HasPrefix(text, KeyPrefix+".") || constantShape.MatchString(text)
}

// KeyBase normalises text into the dot-separated part of a key. Lower-case
// letters, digits and whitespace survive; whitespace runs become single dots.
func KeyBase(text string) string {
	base := nonKeyChars.ReplaceAllString(strings.ToLower(text), "")
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	return whitespace.ReplaceAllString(base, ".")
}

// GenerateKeyFromString builds prefix.base for value. Values without any
// usable character fall back to a short hash so the key stays addressable.
func GenerateKeyFromString(prefix, value string) string {
	base := KeyBase(value)
	if base == "" {
		h := fnv.New32a()
		_, _ = h.Write([]byte(value))
		base = fmt.Sprintf("x%08x", h.Sum32())
	}
	return prefix + "." + base
}

// ServiceParamName derives the constructor parameter name for an injected
// service symbol, e.g. TranslateService -> translateService.
func ServiceParamName(symbol string) string {
	return strcase.ToLowerCamel(symbol)
}
