package ast

import (
	"bytes"
	"sort"
	"strings"

	errs "github.com/napalu/ngx-i18n-scan/errors"
	"github.com/napalu/ngx-i18n-scan/markup"
	"github.com/napalu/ngx-i18n-scan/util"
	"github.com/rs/zerolog"
	ts "github.com/tree-sitter/go-tree-sitter"
)

const (
	// DefaultServiceSymbol is the injected translation service class
	DefaultServiceSymbol = "TranslateService"
	// DefaultServiceModule is the module DefaultServiceSymbol is imported from
	DefaultServiceModule = "@ngx-translate/core"

	angularCore = "@angular/core"
)

// Rewriter routes hardcoded dialog text of component classes through the
// translation service, injecting the service where needed.
type Rewriter struct {
	scanner *Scanner
	symbol  string
	module  string
	param   string
	log     zerolog.Logger
}

// NewRewriter returns a rewriter replacing what s would report. Empty
// symbol or module select the ngx-translate defaults.
func NewRewriter(s *Scanner, symbol, module string, log zerolog.Logger) *Rewriter {
	if symbol == "" {
		symbol = DefaultServiceSymbol
	}
	if module == "" {
		module = DefaultServiceModule
	}
	return &Rewriter{
		scanner: s,
		symbol:  symbol,
		module:  module,
		param:   util.ServiceParamName(symbol),
		log:     log,
	}
}

type edit struct {
	start int
	end   int
	text  string
}

// Rewrite replaces every reportable literal with a key from lookup by a call
// to the service's instant method. Only literals inside the component class
// are replaced, since the call goes through this. The service import and
// injection are added only when something was replaced. The result is
// re-parsed and rejected if the rewrite introduced syntax errors.
func (r *Rewriter) Rewrite(name string, src []byte, lookup markup.KeyLookup) ([]byte, bool, error) {
	tree, ok := parse(src)
	if !ok {
		return nil, false, errs.ErrParseSource.WithArgs(name)
	}
	defer tree.Close()
	root := tree.RootNode()
	class := componentClass(root, src)
	if class == nil {
		return src, false, nil
	}

	var edits []edit
	for n, text := range literals(root, src) {
		if util.IsTranslationKey(text) || !r.scanner.replace(n, src) {
			continue
		}
		if owner := enclosingClass(n); owner == nil || !sameNode(owner, class) {
			r.log.Debug().Str("file", name).Int("line", lineOf(n)).Msg("literal outside component class left alone")
			continue
		}
		key, ok := lookup(text)
		if !ok {
			continue
		}
		edits = append(edits, edit{
			start: int(n.StartByte()),
			end:   int(n.EndByte()),
			text:  "this." + r.param + ".instant(" + quoteKey(key) + ")",
		})
		r.log.Debug().Str("file", name).Int("line", lineOf(n)).Str("key", key).Msg("replace literal")
	}
	if len(edits) == 0 {
		return src, false, nil
	}

	injection, usesField := r.injectEdit(class, src)
	if usesField {
		if e, ok := importEdit(root, src, "inject", angularCore); ok {
			edits = append(edits, e)
		}
	}
	if e, ok := importEdit(root, src, r.symbol, r.module); ok {
		edits = append(edits, e)
	}
	if injection != nil {
		edits = append(edits, *injection)
	}

	out, err := applyEdits(src, edits)
	if err != nil {
		return nil, false, err
	}

	check, ok := parse(out)
	if !ok {
		return nil, false, errs.ErrParseSource.WithArgs(name)
	}
	defer check.Close()
	if check.RootNode().HasError() && !root.HasError() {
		return nil, false, errs.ErrRewriteSyntax.WithArgs(name)
	}
	return out, !bytes.Equal(out, src), nil
}

// enclosingClass returns the class whose body holds n
func enclosingClass(n *ts.Node) *ts.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == "class_body" {
			return p.Parent()
		}
	}
	return nil
}

func sameNode(a, b *ts.Node) bool {
	return a.Kind() == b.Kind() && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// importEdit adds symbol to an existing named import from module, or inserts
// a new import before the first one.
func importEdit(root *ts.Node, src []byte, symbol, module string) (edit, bool) {
	var (
		first  *ts.Node
		target *ts.Node
		quote  = byte('\'')
	)
	for i := uint(0); i < uint(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt == nil || stmt.Kind() != "import_statement" {
			continue
		}
		source := stmt.ChildByFieldName("source")
		if source == nil {
			continue
		}
		if first == nil {
			first = stmt
			if raw := source.Utf8Text(src); raw != "" {
				quote = raw[0]
			}
		}
		if from, _ := literalText(source, src); from != module {
			continue
		}
		named := namedImports(stmt)
		if named == nil {
			continue
		}
		for j := uint(0); j < uint(named.NamedChildCount()); j++ {
			spec := named.NamedChild(j)
			if spec == nil || spec.Kind() != "import_specifier" {
				continue
			}
			if n := spec.ChildByFieldName("name"); n != nil && n.Utf8Text(src) == symbol {
				if alias := spec.ChildByFieldName("alias"); alias == nil {
					return edit{}, false
				}
			}
		}
		if target == nil {
			target = named
		}
	}

	if target != nil {
		var last *ts.Node
		for j := uint(0); j < uint(target.NamedChildCount()); j++ {
			if spec := target.NamedChild(j); spec != nil && spec.Kind() == "import_specifier" {
				last = spec
			}
		}
		if last == nil {
			at := int(target.StartByte()) + 1
			return edit{at, at, " " + symbol + " "}, true
		}
		at := int(last.EndByte())
		return edit{at, at, ", " + symbol}, true
	}

	stmt := "import { " + symbol + " } from " + string(quote) + module + string(quote) + ";\n"
	at := 0
	if first != nil {
		at = int(first.StartByte())
	}
	return edit{at, at, stmt}, true
}

func namedImports(stmt *ts.Node) *ts.Node {
	for i := uint(0); i < uint(stmt.NamedChildCount()); i++ {
		clause := stmt.NamedChild(i)
		if clause == nil || clause.Kind() != "import_clause" {
			continue
		}
		for j := uint(0); j < uint(clause.NamedChildCount()); j++ {
			if c := clause.NamedChild(j); c != nil && c.Kind() == "named_imports" {
				return c
			}
		}
	}
	return nil
}

// injectEdit adds a private service parameter to the class constructor. A
// class without one gets a constructor, or an inject() field when it extends
// another class and a constructor would need a super call. The second result
// reports that the field form was chosen.
func (r *Rewriter) injectEdit(class *ts.Node, src []byte) (*edit, bool) {
	body := class.ChildByFieldName("body")
	if body == nil {
		return nil, false
	}
	param := "private " + r.param + ": " + r.symbol

	var ctor *ts.Node
	for i := uint(0); i < uint(body.NamedChildCount()); i++ {
		m := body.NamedChild(i)
		if m == nil {
			continue
		}
		name := m.ChildByFieldName("name")
		if name == nil {
			continue
		}
		switch m.Kind() {
		case "public_field_definition":
			if name.Utf8Text(src) == r.param {
				return nil, false
			}
		case "method_definition":
			if name.Utf8Text(src) == "constructor" {
				ctor = m
			}
		}
	}

	if ctor != nil {
		return r.paramEdit(ctor, param, src), false
	}

	// a replaced literal sits in a member, so the body is never empty here
	first := body.NamedChild(0)
	if first == nil {
		return nil, false
	}
	if derived(class) {
		at := int(first.StartByte())
		field := "private " + r.param + " = inject(" + r.symbol + ");"
		return &edit{at, at, field + "\n\n" + lineIndent(src, at)}, true
	}
	last := body.Child(uint(body.ChildCount()) - 2)
	if last == nil {
		return nil, false
	}
	at := int(last.EndByte())
	return &edit{at, at, "\n\n" + lineIndent(src, int(first.StartByte())) + "constructor(" + param + ") {}"}, false
}

// paramEdit adds param to the parameter list of ctor, ahead of a rest
// parameter since that must stay last.
func (r *Rewriter) paramEdit(ctor *ts.Node, param string, src []byte) *edit {
	params := ctor.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var last, rest *ts.Node
	for i := uint(0); i < uint(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p == nil || (p.Kind() != "required_parameter" && p.Kind() != "optional_parameter") {
			continue
		}
		pattern := p.ChildByFieldName("pattern")
		if pattern != nil && pattern.Utf8Text(src) == r.param {
			return nil
		}
		if pattern != nil && pattern.Kind() == "rest_pattern" {
			rest = p
			continue
		}
		last = p
	}
	if rest != nil {
		at := int(rest.StartByte())
		sep := ", "
		if indent, ok := ownLineIndent(src, at); ok {
			sep = ",\n" + indent
		}
		return &edit{at, at, param + sep}
	}
	if last == nil {
		at := int(params.StartByte()) + 1
		return &edit{at, at, param}
	}
	at := int(last.EndByte())
	sep := ", "
	if indent, ok := ownLineIndent(src, int(last.StartByte())); ok {
		sep = ",\n" + indent
	}
	if trailing := bytes.TrimLeft(src[at:int(params.EndByte())], " \t\r\n"); len(trailing) > 0 && trailing[0] == ',' {
		at += bytes.IndexByte(src[at:], ',') + 1
		return &edit{at, at, strings.TrimPrefix(sep, ",") + param + ","}
	}
	return &edit{at, at, sep + param}
}

// derived reports whether class has an extends clause
func derived(class *ts.Node) bool {
	for i := uint(0); i < uint(class.NamedChildCount()); i++ {
		h := class.NamedChild(i)
		if h == nil || h.Kind() != "class_heritage" {
			continue
		}
		for j := uint(0); j < uint(h.NamedChildCount()); j++ {
			if c := h.NamedChild(j); c != nil && c.Kind() == "extends_clause" {
				return true
			}
		}
	}
	return false
}

// componentClass picks the class decorated with @Component, else the first class
func componentClass(root *ts.Node, src []byte) *ts.Node {
	var first, component *ts.Node
	walk(root, func(n *ts.Node) bool {
		if component != nil {
			return false
		}
		if n.Kind() != "class_declaration" && n.Kind() != "abstract_class_declaration" {
			return true
		}
		if first == nil {
			first = n
		}
		if hasComponentDecorator(n, src) {
			component = n
			return false
		}
		return true
	})
	if component != nil {
		return component
	}
	return first
}

func hasComponentDecorator(class *ts.Node, src []byte) bool {
	holders := []*ts.Node{class}
	if p := class.Parent(); p != nil && p.Kind() == "export_statement" {
		holders = append(holders, p)
	}
	for _, h := range holders {
		for i := uint(0); i < uint(h.NamedChildCount()); i++ {
			if d := h.NamedChild(i); d != nil && d.Kind() == "decorator" && strings.HasPrefix(d.Utf8Text(src), "@Component") {
				return true
			}
		}
	}
	return false
}

// lineIndent returns the leading whitespace of the line holding offset
func lineIndent(src []byte, offset int) string {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}

// ownLineIndent reports the indentation of offset when only whitespace
// precedes it on its line
func ownLineIndent(src []byte, offset int) (string, bool) {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	prefix := src[start:offset]
	if start == 0 || len(bytes.TrimLeft(prefix, " \t")) > 0 {
		return "", false
	}
	return string(prefix), true
}

func quoteKey(key string) string {
	return "'" + strings.ReplaceAll(strings.ReplaceAll(key, `\`, `\\`), "'", `\'`) + "'"
}

// applyEdits splices edits into src right to left so earlier offsets stay
// valid. Insertions may share an offset; intersecting ranges are an error.
func applyEdits(src []byte, edits []edit) ([]byte, error) {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	for i := 1; i < len(edits); i++ {
		if edits[i].start < edits[i-1].end {
			return nil, errs.ErrOverlappingEdits.WithArgs(edits[i].start)
		}
	}
	out := append([]byte(nil), src...)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return out, nil
}
