// Package ast scans and rewrites Angular component classes on a tree-sitter
// TypeScript syntax tree.
package ast

import (
	"iter"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

var typescript = ts.NewLanguage(tree_sitter_typescript.LanguageTypescript())

// parse returns the syntax tree of src; the caller closes it
func parse(src []byte) (*ts.Tree, bool) {
	p := ts.NewParser()
	defer p.Close()
	if err := p.SetLanguage(typescript); err != nil {
		return nil, false
	}
	tree := p.Parse(src, nil)
	return tree, tree != nil
}

// walk visits n and its descendants in source order
func walk(n *ts.Node, visit func(*ts.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && !walk(c, visit) {
			return false
		}
	}
	return true
}

// literals yields every string literal and substitution-free template
// literal under root with its trimmed, unescaped text. Blank literals and
// property-name keys are skipped.
func literals(root *ts.Node, src []byte) iter.Seq2[*ts.Node, string] {
	return func(yield func(*ts.Node, string) bool) {
		walk(root, func(n *ts.Node) bool {
			text, ok := literalText(n, src)
			if !ok || isPairKey(n) {
				return true
			}
			if text = strings.TrimSpace(text); text == "" {
				return true
			}
			return yield(n, text)
		})
	}
}

// literalText returns the cooked content of a string or template literal
func literalText(n *ts.Node, src []byte) (string, bool) {
	switch n.Kind() {
	case "string":
	case "template_string":
		for i := uint(0); i < uint(n.ChildCount()); i++ {
			if c := n.Child(i); c != nil && c.Kind() == "template_substitution" {
				return "", false
			}
		}
	default:
		return "", false
	}
	raw := n.Utf8Text(src)
	if len(raw) < 2 {
		return "", false
	}
	return cook(raw[1 : len(raw)-1]), true
}

func isPairKey(n *ts.Node) bool {
	p := n.Parent()
	if p == nil || p.Kind() != "pair" {
		return false
	}
	k := p.ChildByFieldName("key")
	return k != nil && k.StartByte() == n.StartByte() && k.EndByte() == n.EndByte()
}

// propertyName is the name of a pair key, unquoted when written as a string
func propertyName(key *ts.Node, src []byte) string {
	if key == nil {
		return ""
	}
	if text, ok := literalText(key, src); ok {
		return text
	}
	return key.Utf8Text(src)
}

func lineOf(n *ts.Node) int {
	return int(n.StartPosition().Row) + 1
}
