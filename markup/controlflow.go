package markup

// blockKeywords open a control flow block: @keyword (params) {
var blockKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "switch": true, "case": true,
	"default": true, "defer": true, "placeholder": true, "loading": true,
	"error": true, "empty": true,
}

// controlFlowSpans returns the [start, end) spans of template syntax in seg
// that is not text: block openers such as `@if (ready()) {`, closing braces
// and `@let` declarations.
func controlFlowSpans(seg []byte) [][2]int {
	var out [][2]int
	for i := 0; i < len(seg); {
		switch seg[i] {
		case '}':
			out = append(out, [2]int{i, i + 1})
			i++
			continue
		case '@':
			if end, ok := blockSyntax(seg, i); ok {
				out = append(out, [2]int{i, end})
				i = end
				continue
			}
		}
		i++
	}
	return out
}

// blockSyntax matches the block opener or @let declaration starting at the
// '@' at seg[at] and returns the offset just past it.
func blockSyntax(seg []byte, at int) (int, bool) {
	word, i := wordAt(seg, at+1)
	if word == "let" {
		if i >= len(seg) || !isSpace(seg[i]) {
			return 0, false
		}
		return skipPast(seg, i, ';')
	}
	if !blockKeywords[word] {
		return 0, false
	}
	if word == "else" {
		j := skipSpace(seg, i)
		if w, k := wordAt(seg, j); w == "if" && j > i {
			i = k
		}
	}

	i = skipSpace(seg, i)
	if i < len(seg) && seg[i] == '(' {
		end, ok := closeParen(seg, i)
		if !ok {
			return 0, false
		}
		i = skipSpace(seg, end)
	}
	if i < len(seg) && seg[i] == '{' {
		return i + 1, true
	}
	return 0, false
}

// closeParen returns the offset after the parenthesis balancing seg[open].
// Parentheses inside string literals do not count.
func closeParen(seg []byte, open int) (int, bool) {
	depth := 0
	for i := open; i < len(seg); i++ {
		switch c := seg[i]; c {
		case '\'', '"', '`':
			end, ok := skipQuoted(seg, i)
			if !ok {
				return 0, false
			}
			i = end - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// skipPast returns the offset after the first c at or after from that is not
// inside a string literal.
func skipPast(seg []byte, from int, c byte) (int, bool) {
	for i := from; i < len(seg); i++ {
		switch seg[i] {
		case '\'', '"', '`':
			end, ok := skipQuoted(seg, i)
			if !ok {
				return 0, false
			}
			i = end - 1
		case c:
			return i + 1, true
		}
	}
	return 0, false
}

// skipQuoted returns the offset after the string literal opened at seg[at]
func skipQuoted(seg []byte, at int) (int, bool) {
	quote := seg[at]
	for i := at + 1; i < len(seg); i++ {
		switch seg[i] {
		case '\\':
			i++
		case quote:
			return i + 1, true
		}
	}
	return 0, false
}

func wordAt(seg []byte, i int) (string, int) {
	start := i
	for i < len(seg) && (seg[i] >= 'a' && seg[i] <= 'z' || seg[i] >= 'A' && seg[i] <= 'Z') {
		i++
	}
	return string(seg[start:i]), i
}

func skipSpace(seg []byte, i int) int {
	for i < len(seg) && isSpace(seg[i]) {
		i++
	}
	return i
}
