package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
)

const indentUnit = "  "

// encode renders obj as JSON with two-space indentation. Member order is
// kept and HTML characters are not escaped, so markup inside values stays
// readable in the translation file.
func encode(obj *Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, obj, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any, depth int) error {
	switch val := v.(type) {
	case *Object:
		return writeObject(buf, val, depth)
	case []any:
		return writeArray(buf, val, depth)
	case json.Number:
		buf.WriteString(val.String())
		return nil
	default:
		return writeScalar(buf, val)
	}
}

func writeObject(buf *bytes.Buffer, obj *Object, depth int) error {
	if obj.Len() == 0 {
		buf.WriteString("{}")
		return nil
	}
	inner := strings.Repeat(indentUnit, depth+1)
	buf.WriteString("{\n")
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		buf.WriteString(inner)
		if err := writeScalar(buf, pair.Key); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := writeValue(buf, pair.Value, depth+1); err != nil {
			return err
		}
		if pair.Next() != nil {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteByte('}')
	return nil
}

func writeArray(buf *bytes.Buffer, arr []any, depth int) error {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return nil
	}
	inner := strings.Repeat(indentUnit, depth+1)
	buf.WriteString("[\n")
	for i, item := range arr {
		buf.WriteString(inner)
		if err := writeValue(buf, item, depth+1); err != nil {
			return err
		}
		if i < len(arr)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat(indentUnit, depth))
	buf.WriteByte(']')
	return nil
}

func writeScalar(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
