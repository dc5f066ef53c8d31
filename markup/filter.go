package markup

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/napalu/ngx-i18n-scan/util"
)

// MinTextLength is the shortest text reported as hardcoded
const MinTextLength = 3

// Translatable applies the hardcoded-text filters to a candidate text found
// on line.
func Translatable(text, line string) bool {
	switch {
	case utf8.RuneCountInString(text) < MinTextLength:
		return false
	case util.IsTranslationKey(text):
		return false
	case strings.Contains(line, "'"+text+"' | translate"),
		strings.Contains(line, `"`+text+`" | translate`):
		return false
	case strings.HasSuffix(text, ":"):
		return false
	case strings.Contains(text, "| translate"):
		return false
	case strings.HasPrefix(text, "{{"), strings.HasPrefix(text, "*"):
		return false
	case IsNumeric(text):
		return false
	}
	return true
}

// IsNumeric reports whether text reads as a number in a template expression:
// decimal, exponent, 0x/0o/0b integers and signed Infinity.
func IsNumeric(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return true
	}
	switch t {
	case "Infinity", "+Infinity", "-Infinity":
		return true
	}
	lower := strings.ToLower(t)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(t, "_") {
		return false
	}
	if len(lower) > 2 && lower[0] == '0' && strings.ContainsRune("xob", rune(lower[1])) {
		_, err := strconv.ParseUint(lower, 0, 64)
		return err == nil || errors.Is(err, strconv.ErrRange)
	}
	if strings.ContainsAny(lower, "xp") {
		return false
	}
	_, err := strconv.ParseFloat(t, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
