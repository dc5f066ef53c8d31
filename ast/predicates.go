package ast

import (
	"slices"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// Predicate classifies a node of a parsed source by its ancestor chain
type Predicate func(n *ts.Node, src []byte) bool

// DefaultDialogCalls are the call expressions whose options are shown to the user
var DefaultDialogCalls = []string{"Swal.fire", "alert", "confirm", "MatSnackBar.open"}

// DefaultUIProperties are the dialog option names holding display text
var DefaultUIProperties = []string{"message", "title", "confirmButtonText", "cancelButtonText"}

// All holds when every predicate holds
func All(ps ...Predicate) Predicate {
	return func(n *ts.Node, src []byte) bool {
		for _, p := range ps {
			if !p(n, src) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one predicate holds
func Any(ps ...Predicate) Predicate {
	return func(n *ts.Node, src []byte) bool {
		for _, p := range ps {
			if p(n, src) {
				return true
			}
		}
		return false
	}
}

// Not negates p
func Not(p Predicate) Predicate {
	return func(n *ts.Node, src []byte) bool {
		return !p(n, src)
	}
}

// IsPartOfTranslation reports whether n already flows into a translation:
// an argument of translate.get/instant or the left side of a translate pipe.
func IsPartOfTranslation(n *ts.Node, src []byte) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		switch cur.Kind() {
		case "call_expression":
			fn := cur.ChildByFieldName("function")
			if fn == nil || fn.Kind() != "member_expression" {
				continue
			}
			prop := fn.ChildByFieldName("property")
			obj := fn.ChildByFieldName("object")
			if prop == nil || obj == nil {
				continue
			}
			if name := prop.Utf8Text(src); (name == "get" || name == "instant") &&
				strings.Contains(obj.Utf8Text(src), "translate") {
				return true
			}
		case "binary_expression":
			op := cur.ChildByFieldName("operator")
			right := cur.ChildByFieldName("right")
			if op != nil && right != nil && op.Kind() == "|" && strings.Contains(right.Utf8Text(src), "translate") {
				return true
			}
		}
	}
	return false
}

// IsNonTranslatableContext reports whether n sits in code that never renders
// text: type declarations, regular expressions, imports and decorators other
// than @Component.
func IsNonTranslatableContext(n *ts.Node, src []byte) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		switch cur.Kind() {
		case "enum_declaration", "interface_declaration", "type_alias_declaration",
			"import_statement", "import_specifier":
			return true
		case "regex":
			if cur.StartByte() != n.StartByte() || cur.EndByte() != n.EndByte() {
				return true
			}
		case "decorator":
			if !strings.Contains(cur.Utf8Text(src), "@Component") {
				return true
			}
		}
	}
	return false
}

// UIContext holds for nodes under a property named in props of an object
// literal passed to a call whose callee text contains one of calls.
func UIContext(props, calls []string) Predicate {
	return func(n *ts.Node, src []byte) bool {
		for cur := n; cur != nil; cur = cur.Parent() {
			if cur.Kind() != "pair" || !slices.Contains(props, propertyName(cur.ChildByFieldName("key"), src)) {
				continue
			}
			call := callOf(cur.Parent())
			if call == nil {
				continue
			}
			callee := call.ChildByFieldName("function")
			if callee == nil {
				continue
			}
			text := callee.Utf8Text(src)
			if slices.ContainsFunc(calls, func(c string) bool { return strings.Contains(text, c) }) {
				return true
			}
		}
		return false
	}
}

// DialogHTML holds for the direct value of an html property in an object
// literal passed to a call whose callee is exactly one of calls.
func DialogHTML(calls []string) Predicate {
	return func(n *ts.Node, src []byte) bool {
		pair := n.Parent()
		if pair == nil || pair.Kind() != "pair" || propertyName(pair.ChildByFieldName("key"), src) != "html" {
			return false
		}
		value := pair.ChildByFieldName("value")
		if value == nil || value.StartByte() != n.StartByte() || value.EndByte() != n.EndByte() {
			return false
		}
		call := callOf(pair.Parent())
		if call == nil {
			return false
		}
		callee := call.ChildByFieldName("function")
		return callee != nil && slices.Contains(calls, callee.Utf8Text(src))
	}
}

// callOf returns the call expression obj is a direct argument of
func callOf(obj *ts.Node) *ts.Node {
	if obj == nil || obj.Kind() != "object" {
		return nil
	}
	args := obj.Parent()
	if args == nil || args.Kind() != "arguments" {
		return nil
	}
	call := args.Parent()
	if call == nil || call.Kind() != "call_expression" {
		return nil
	}
	return call
}
