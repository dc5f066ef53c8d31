package ast

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// cook resolves the escape sequences of a JavaScript string body
func cook(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 == len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch e := raw[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if r, ok := hexRune(raw, i+1, 2); ok {
				b.WriteRune(r)
				i += 2
			} else {
				b.WriteByte(e)
			}
		case 'u':
			r, n := unicodeEscape(raw, i+1)
			if n == 0 {
				b.WriteByte(e)
				continue
			}
			i += n
			if utf16.IsSurrogate(r) && i+2 < len(raw) && raw[i+1] == '\\' && raw[i+2] == 'u' {
				if lo, m := unicodeEscape(raw, i+3); m > 0 {
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						r = pair
						i += 2 + m
					}
				}
			}
			b.WriteRune(r)
		default:
			b.WriteByte(e)
		}
	}
	return b.String()
}

// unicodeEscape reads the XXXX or {X...} part of a \u escape starting at i
// and returns the rune and the number of bytes consumed.
func unicodeEscape(raw string, i int) (rune, int) {
	if i < len(raw) && raw[i] == '{' {
		end := strings.IndexByte(raw[i:], '}')
		if end < 2 {
			return 0, 0
		}
		if r, ok := hexRune(raw, i+1, end-1); ok {
			return r, end + 1
		}
		return 0, 0
	}
	if r, ok := hexRune(raw, i, 4); ok {
		return r, 4
	}
	return 0, 0
}

func hexRune(raw string, i, n int) (rune, bool) {
	if i+n > len(raw) {
		return 0, false
	}
	v, err := strconv.ParseUint(raw[i:i+n], 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, false
	}
	return rune(v), true
}
