package catalog

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is one JSON object of a translation file with member order preserved.
// Values are string leaves, nested *Object values, or other raw JSON values
// (json.Number, bool, nil, []any) that are carried through untouched.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// Flatten turns a nested object into dot-path keys. Arrays and scalars are
// leaves; empty objects contribute no keys.
func Flatten(obj *Object) *Object {
	flat := NewObject()
	flattenInto(flat, obj, "", nil)
	return flat
}

// flattenInto calls collide for every dot path produced more than once, as
// happens when a nested member and a dotted member spell the same key.
func flattenInto(flat, obj *Object, prefix string, collide func(key string)) {
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if prefix != "" {
			key = prefix + "." + pair.Key
		}
		if child, ok := pair.Value.(*Object); ok {
			flattenInto(flat, child, key, collide)
			continue
		}
		if _, exists := flat.Set(key, pair.Value); exists && collide != nil {
			collide(key)
		}
	}
}

// Unflatten rebuilds nested objects from dot-path keys.
//
// A key whose proper prefix is itself a leaf key cannot descend through that
// leaf; the rest of its path is kept as a single dotted member of the deepest
// object reachable, so {"a": "x", "a.b": "y"} stays as written. Empty path
// segments are handled the same way. The result does not depend on the order
// of the flat entries and Flatten(Unflatten(f)) holds the same pairs as f.
func Unflatten(flat *Object) *Object {
	leaves := make(map[string]struct{}, flat.Len())
	for pair := flat.Oldest(); pair != nil; pair = pair.Next() {
		leaves[pair.Key] = struct{}{}
	}

	root := NewObject()
	for pair := flat.Oldest(); pair != nil; pair = pair.Next() {
		segments := strings.Split(pair.Key, ".")
		node := root
		i := 0
		for ; i < len(segments)-1; i++ {
			if segments[i] == "" {
				break
			}
			if _, isLeaf := leaves[strings.Join(segments[:i+1], ".")]; isLeaf {
				break
			}
			child, ok := node.Get(segments[i])
			if !ok {
				next := NewObject()
				node.Set(segments[i], next)
				node = next
				continue
			}
			next, isObject := child.(*Object)
			if !isObject {
				break
			}
			node = next
		}
		node.Set(strings.Join(segments[i:], "."), pair.Value)
	}
	return root
}
