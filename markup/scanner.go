// Package markup finds and rewrites user-visible text in component templates.
//
// Templates are tokenised with golang.org/x/net/html. Every text run and
// attribute value is tracked with its byte span so rewrites replace exactly
// the scanned bytes.
package markup

import (
	"bytes"
	"html"
	"regexp"
	"sort"
	"strings"

	nethtml "golang.org/x/net/html"
)

// Kind identifies the template construct a candidate was found in
type Kind int

const (
	// KindText is text between tags or interpolations
	KindText Kind = iota
	// KindAttribute is the static value of a translatable attribute
	KindAttribute
	// KindBindingTernary is a branch of [attr]="cond ? 'A' : 'B'"
	KindBindingTernary
	// KindInterpolationTernary is a branch of {{ cond ? 'A' : 'B' }}
	KindInterpolationTernary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindAttribute:
		return "attribute"
	case KindBindingTernary:
		return "binding-ternary"
	case KindInterpolationTernary:
		return "interpolation-ternary"
	}
	return "unknown"
}

// Candidate is user-visible text found in a template
type Candidate struct {
	Text string
	Line int
	Kind Kind
	Attr string
}

// DefaultAttributes are the attributes whose static values are user-visible
var DefaultAttributes = []string{"placeholder"}

// nonTextBindings are property bindings that never carry display text
var nonTextBindings = map[string]bool{
	"class": true, "ngclass": true, "style": true, "ngstyle": true,
	"id": true, "src": true, "href": true, "routerlink": true,
	"type": true, "name": true, "formcontrolname": true, "ngswitch": true,
}

var (
	bindingName = regexp.MustCompile(`^\[([\w.-]+)\]$`)
	ternary     = regexp.MustCompile(`^\s*([^?]+?)\s*\?\s*['"]([^'"]+)['"]\s*:\s*['"]([^'"]+)['"]\s*$`)
	translated  = regexp.MustCompile(`\|\s*translate\b`)
)

// site is a rewritable place in a template: a byte span plus the texts it holds
type site struct {
	kind      Kind
	start     int
	end       int
	line      string
	lineNo    int
	attr      string
	quote     byte
	text      string
	condition string
	branches  [2]string
}

// Scanner finds candidates in template source
type Scanner struct {
	attrs map[string]bool
}

// NewScanner returns a scanner treating attrs as translatable attributes;
// DefaultAttributes are used when none are given.
func NewScanner(attrs ...string) *Scanner {
	if len(attrs) == 0 {
		attrs = DefaultAttributes
	}
	s := &Scanner{attrs: make(map[string]bool, len(attrs))}
	for _, a := range attrs {
		s.attrs[strings.ToLower(strings.TrimSpace(a))] = true
	}
	return s
}

// Scan returns the translatable candidates of src in source order
func (s *Scanner) Scan(src []byte) []Candidate {
	var out []Candidate
	for _, st := range s.sites(src) {
		switch st.kind {
		case KindText, KindAttribute:
			if Translatable(st.text, st.line) {
				out = append(out, Candidate{Text: st.text, Line: st.lineNo, Kind: st.kind, Attr: st.attr})
			}
		case KindBindingTernary, KindInterpolationTernary:
			for _, b := range st.branches {
				if Translatable(b, st.line) {
					out = append(out, Candidate{Text: b, Line: st.lineNo, Kind: st.kind, Attr: st.attr})
				}
			}
		}
	}
	return out
}

// sites tokenises src and collects every text run, attribute value and
// ternary that could hold display text, before any filtering.
func (s *Scanner) sites(src []byte) []site {
	lines := newLineIndex(src)
	z := nethtml.NewTokenizer(bytes.NewReader(src))

	var (
		out       []site
		offset    int
		inRawText bool
	)
	for {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			break
		}
		raw := z.Raw()
		start := offset
		offset += len(raw)

		switch tt {
		case nethtml.TextToken:
			if inRawText {
				continue
			}
			out = append(out, textSites(raw, start, lines)...)
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			inRawText = tt == nethtml.StartTagToken && (tag == "script" || tag == "style")
			out = append(out, s.attributeSites(raw, start, lines)...)
		case nethtml.EndTagToken:
			inRawText = false
		}
	}
	return out
}

// textSites splits a raw text run into plain segments and interpolations
func textSites(raw []byte, base int, lines *lineIndex) []site {
	var out []site
	pos := 0
	for pos < len(raw) {
		open := bytes.Index(raw[pos:], []byte("{{"))
		if open < 0 {
			out = append(out, plainSites(raw, pos, len(raw), base, lines)...)
			break
		}
		open += pos
		out = append(out, plainSites(raw, pos, open, base, lines)...)

		closeIdx := bytes.Index(raw[open+2:], []byte("}}"))
		if closeIdx < 0 {
			break
		}
		end := open + 2 + closeIdx + 2
		if st, ok := interpolationSite(string(raw[open+2:end-2]), base+open, base+end, lines); ok {
			out = append(out, st)
		}
		pos = end
	}
	return out
}

// plainSites yields the text of raw[from:to] with control flow syntax removed
func plainSites(raw []byte, from, to, base int, lines *lineIndex) []site {
	seg := raw[from:to]
	var out []site
	last := 0
	for _, loc := range controlFlowSpans(seg) {
		if st, ok := plainSite(seg[last:loc[0]], base+from+last, lines); ok {
			out = append(out, st)
		}
		last = loc[1]
	}
	if st, ok := plainSite(seg[last:], base+from+last, lines); ok {
		out = append(out, st)
	}
	return out
}

// plainSite trims whitespace and leading separators left over from a split
// around an interpolation, as in "Hello {{ name }}, welcome".
func plainSite(chunk []byte, base int, lines *lineIndex) (site, bool) {
	trimmedLeft := bytes.TrimLeft(chunk, " \t\r\n\f,;")
	lead := len(chunk) - len(trimmedLeft)
	trimmed := bytes.TrimRight(trimmedLeft, " \t\r\n\f")
	if len(trimmed) == 0 {
		return site{}, false
	}
	start := base + lead
	text := html.UnescapeString(strings.Join(strings.Fields(string(trimmed)), " "))
	return site{
		kind:   KindText,
		start:  start,
		end:    start + len(trimmed),
		line:   lines.lineText(start),
		lineNo: lines.lineOf(start),
		text:   text,
	}, true
}

// matchTernary matches cond ? 'A' : 'B', bare or wrapped in one pair of
// parentheses.
func matchTernary(expr string) []string {
	e := strings.TrimSpace(expr)
	if strings.HasPrefix(e, "(") {
		if end, ok := closeParen([]byte(e), 0); ok && end == len(e) {
			e = e[1 : len(e)-1]
		}
	}
	return ternary.FindStringSubmatch(e)
}

// interpolationSite recognises {{ cond ? 'A' : 'B' }} spanning [start, end)
func interpolationSite(expr string, start, end int, lines *lineIndex) (site, bool) {
	if translated.MatchString(expr) {
		return site{}, false
	}
	m := matchTernary(expr)
	if m == nil {
		return site{}, false
	}
	return site{
		kind:      KindInterpolationTernary,
		start:     start,
		end:       end,
		line:      lines.lineText(start),
		lineNo:    lines.lineOf(start),
		condition: strings.TrimSpace(m[1]),
		branches:  [2]string{strings.TrimSpace(m[2]), strings.TrimSpace(m[3])},
	}, true
}

// attributeSites inspects the attributes of a raw start tag
func (s *Scanner) attributeSites(raw []byte, base int, lines *lineIndex) []site {
	var out []site
	for _, a := range parseAttributes(raw) {
		if !a.hasValue {
			continue
		}
		valueStart := base + a.valueStart
		valueEnd := base + a.valueEnd

		lname := strings.ToLower(a.name)
		if s.attrs[lname] {
			trimmed := strings.TrimSpace(a.value)
			if strings.HasPrefix(trimmed, "{{") && strings.HasSuffix(trimmed, "}}") && strings.Count(trimmed, "{{") == 1 {
				lead := strings.Index(a.value, "{{")
				st, ok := interpolationSite(trimmed[2:len(trimmed)-2], valueStart+lead, valueStart+lead+len(trimmed), lines)
				if ok {
					st.attr = a.name
					st.quote = a.quote
					out = append(out, st)
				}
				continue
			}
			if trimmed == "" || strings.Contains(a.value, "{{") || translated.MatchString(a.value) {
				continue
			}
			out = append(out, site{
				kind:   KindAttribute,
				start:  valueStart,
				end:    valueEnd,
				line:   lines.lineText(valueStart),
				lineNo: lines.lineOf(valueStart),
				attr:   a.name,
				quote:  a.quote,
				text:   html.UnescapeString(trimmed),
			})
			continue
		}

		bm := bindingName.FindStringSubmatch(a.name)
		if bm == nil || nonTextBindings[strings.ToLower(bm[1])] || strings.HasPrefix(strings.ToLower(bm[1]), "class.") ||
			strings.HasPrefix(strings.ToLower(bm[1]), "style.") || translated.MatchString(a.value) {
			continue
		}
		m := matchTernary(a.value)
		if m == nil {
			continue
		}
		out = append(out, site{
			kind:      KindBindingTernary,
			start:     valueStart,
			end:       valueEnd,
			line:      lines.lineText(valueStart),
			lineNo:    lines.lineOf(valueStart),
			attr:      a.name,
			quote:     a.quote,
			condition: strings.TrimSpace(m[1]),
			branches:  [2]string{strings.TrimSpace(m[2]), strings.TrimSpace(m[3])},
		})
	}
	return out
}

// lineIndex maps byte offsets to 1-based line numbers and line text
type lineIndex struct {
	src    []byte
	starts []int
}

func newLineIndex(src []byte) *lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{src: src, starts: starts}
}

func (l *lineIndex) lineOf(offset int) int {
	return sort.SearchInts(l.starts, offset+1)
}

func (l *lineIndex) lineText(offset int) string {
	n := l.lineOf(offset)
	start := l.starts[n-1]
	end := len(l.src)
	if n < len(l.starts) {
		end = l.starts[n] - 1
	}
	return string(l.src[start:end])
}
