package markup

import "testing"

func TestTranslatable(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		line     string
		expected bool
	}{
		{name: "two characters", text: "OK", expected: false},
		{name: "three characters", text: "Yes", expected: true},
		{name: "generated key", text: "text.hello", expected: false},
		{name: "constant", text: "SAVE_BUTTON", expected: false},
		{name: "already piped on line", text: "Hello", line: `<p>{{ 'Hello' | translate }}</p>`, expected: false},
		{name: "label", text: "Name:", expected: false},
		{name: "contains pipe", text: "x | translate", expected: false},
		{name: "interpolation fragment", text: "{{ value", expected: false},
		{name: "structural directive", text: "*ngIf", expected: false},
		{name: "integer", text: "1234", expected: false},
		{name: "decimal", text: "3.14", expected: false},
		{name: "exponent", text: "1e10", expected: false},
		{name: "hex", text: "0x1F", expected: false},
		{name: "infinity", text: "-Infinity", expected: false},
		{name: "nan is text", text: "NaN", expected: true},
		{name: "sentence", text: "Enter your name", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translatable(tt.text, tt.line); got != tt.expected {
				t.Errorf("Translatable(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}
