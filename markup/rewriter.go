package markup

import (
	"bytes"
	"sort"
	"strings"
)

// KeyLookup returns the translation key chosen for a text
type KeyLookup func(text string) (string, bool)

type edit struct {
	start int
	end   int
	text  string
}

// Rewrite routes the hardcoded text of a template through the translate pipe.
//
// Ternaries in interpolations and in [attr] bindings are wrapped when at least
// one branch has a key; branches without a key keep their literal. Static
// translatable attributes become interpolations of their key, or of their own
// text when no key exists. Text runs are replaced only when their text is one
// of texts and has a key. The second return value reports whether anything
// changed.
func (s *Scanner) Rewrite(src []byte, texts []string, lookup KeyLookup) ([]byte, bool) {
	wanted := make(map[string]bool, len(texts))
	for _, t := range texts {
		wanted[t] = true
	}

	var edits []edit
	for _, st := range s.sites(src) {
		switch st.kind {
		case KindInterpolationTernary:
			expr, ok := ternaryExpr(st, lookup, innerQuote(st.quote))
			if !ok {
				continue
			}
			edits = append(edits, edit{st.start, st.end, "{{ " + expr + " | translate }}"})
		case KindBindingTernary:
			expr, ok := ternaryExpr(st, lookup, innerQuote(st.quote))
			if !ok {
				continue
			}
			edits = append(edits, edit{st.start, st.end, expr + " | translate"})
		case KindAttribute:
			key, ok := lookup(st.text)
			if !ok {
				key = st.text
			}
			edits = append(edits, edit{st.start, st.end, pipe(key, innerQuote(st.quote))})
		case KindText:
			if !wanted[st.text] {
				continue
			}
			key, ok := lookup(st.text)
			if !ok {
				continue
			}
			edits = append(edits, edit{st.start, st.end, pipe(key, '\'')})
		}
	}

	if len(edits) == 0 {
		return src, false
	}
	out := applyEdits(src, edits)
	return out, !bytes.Equal(out, src)
}

func ternaryExpr(st site, lookup KeyLookup, q byte) (string, bool) {
	keyA, okA := lookup(st.branches[0])
	keyB, okB := lookup(st.branches[1])
	if !okA && !okB {
		return "", false
	}
	if !okA {
		keyA = st.branches[0]
	}
	if !okB {
		keyB = st.branches[1]
	}
	return "(" + st.condition + " ? " + quote(keyA, q) + " : " + quote(keyB, q) + ")", true
}

func pipe(key string, q byte) string {
	return "{{ " + quote(key, q) + " | translate }}"
}

// innerQuote picks the string delimiter usable inside an attribute value
func innerQuote(attrQuote byte) byte {
	if attrQuote == '\'' {
		return '"'
	}
	return '\''
}

func quote(s string, q byte) string {
	d := string(q)
	return d + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), d, `\`+d) + d
}

// applyEdits splices non-overlapping edits into src, last edit first so
// earlier offsets stay valid. Overlapping edits keep the one found first.
func applyEdits(src []byte, edits []edit) []byte {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	kept := edits[:0]
	lastEnd := -1
	for _, e := range edits {
		if e.start < lastEnd {
			continue
		}
		kept = append(kept, e)
		lastEnd = e.end
	}

	out := append([]byte(nil), src...)
	for i := len(kept) - 1; i >= 0; i-- {
		e := kept[i]
		var buf bytes.Buffer
		buf.Grow(len(out) - (e.end - e.start) + len(e.text))
		buf.Write(out[:e.start])
		buf.WriteString(e.text)
		buf.Write(out[e.end:])
		out = buf.Bytes()
	}
	return out
}
