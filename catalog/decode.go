package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var errNotObject = errors.New("top-level value is not an object")

// Duplicate is a key that appears more than once in the same JSON object
type Duplicate struct {
	Key   string `yaml:"key"`
	Count int    `yaml:"count"`
}

type decoder struct {
	dec        *json.Decoder
	duplicates *Object
}

// decodeObject parses a JSON document whose root must be an object. Repeated
// members keep their first position and take the last value.
func decodeObject(data []byte) (*Object, []Duplicate, error) {
	d := &decoder{
		dec:        json.NewDecoder(bytes.NewReader(data)),
		duplicates: NewObject(),
	}
	d.dec.UseNumber()

	tok, err := d.dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errNotObject
	}
	root, err := d.object("")
	if err != nil {
		return nil, nil, err
	}
	if _, err := d.dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level object at offset %d", d.dec.InputOffset())
		}
		return nil, nil, err
	}

	dups := make([]Duplicate, 0, d.duplicates.Len())
	for pair := d.duplicates.Oldest(); pair != nil; pair = pair.Next() {
		dups = append(dups, Duplicate{Key: pair.Key, Count: pair.Value.(int)})
	}
	return root, dups, nil
}

// object reads members up to and including the closing brace
func (d *decoder) object(path string) (*Object, error) {
	obj := NewObject()
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key at offset %d", d.dec.InputOffset())
		}
		memberPath := key
		if path != "" {
			memberPath = path + "." + key
		}

		value, err := d.value(memberPath)
		if err != nil {
			return nil, err
		}
		if _, exists := obj.Get(key); exists {
			count := 1
			if c, seen := d.duplicates.Get(memberPath); seen {
				count = c.(int)
			}
			d.duplicates.Set(memberPath, count+1)
		}
		obj.Set(key, value)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func (d *decoder) value(path string) (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	delim, isDelim := tok.(json.Delim)
	if !isDelim {
		return tok, nil
	}
	switch delim {
	case '{':
		return d.object(path)
	case '[':
		var arr []any
		for d.dec.More() {
			v, err := d.value(path)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := d.dec.Token(); err != nil {
			return nil, err
		}
		if arr == nil {
			arr = []any{}
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", delim, d.dec.InputOffset())
	}
}
