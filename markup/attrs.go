package markup

// attribute is one attribute of a raw start tag with its value offsets
// relative to the start of the tag
type attribute struct {
	name       string
	value      string
	hasValue   bool
	quote      byte
	valueStart int
	valueEnd   int
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

// parseAttributes walks the raw bytes of a start tag such as
// `<input [value]="x" placeholder='Name'>`. The tokenizer only exposes
// unescaped attribute values, so offsets are recovered here.
func parseAttributes(raw []byte) []attribute {
	var attrs []attribute
	n := len(raw)
	i := 1
	for i < n && !isSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++
	}

	for i < n {
		for i < n && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= n || raw[i] == '>' {
			break
		}

		nameStart := i
		for i < n && !isSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' {
			if raw[i] == '/' && i+1 < n && raw[i+1] == '>' {
				break
			}
			i++
		}
		a := attribute{name: string(raw[nameStart:i])}
		if i == nameStart {
			i++
			continue
		}

		j := i
		for j < n && isSpace(raw[j]) {
			j++
		}
		if j < n && raw[j] == '=' {
			j++
			for j < n && isSpace(raw[j]) {
				j++
			}
			a.hasValue = true
			if j < n && (raw[j] == '"' || raw[j] == '\'') {
				a.quote = raw[j]
				j++
				a.valueStart = j
				for j < n && raw[j] != a.quote {
					j++
				}
				a.valueEnd = j
				if j < n {
					j++
				}
			} else {
				a.valueStart = j
				for j < n && !isSpace(raw[j]) && raw[j] != '>' {
					j++
				}
				a.valueEnd = j
			}
			a.value = string(raw[a.valueStart:a.valueEnd])
			i = j
		}
		attrs = append(attrs, a)
	}
	return attrs
}
