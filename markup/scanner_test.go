package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const cardTemplate = `<div class="card">
  <h1>Welcome back</h1>
  <!-- <p>Commented text</p> -->
  <p>Hello {{ user.name }}, nice to see you</p>
  <input type="text" placeholder="Enter name" />
  <span [title]="isOn ? 'Enabled' : 'Disabled'"></span>
  <span>{{ active ? 'Active user' : 'Inactive user' }}</span>
  <button>{{ 'text.save' | translate }}</button>
  <span>OK</span>
  <span>42</span>
  <label>Name:</label>
  <script>var x = "Not text";</script>
  <style>.card::after { content: "Not text either"; }</style>
</div>
`

func TestScan(t *testing.T) {
	got := NewScanner().Scan([]byte(cardTemplate))

	want := []Candidate{
		{Text: "Welcome back", Line: 2, Kind: KindText},
		{Text: "Hello", Line: 4, Kind: KindText},
		{Text: "nice to see you", Line: 4, Kind: KindText},
		{Text: "Enter name", Line: 5, Kind: KindAttribute, Attr: "placeholder"},
		{Text: "Enabled", Line: 6, Kind: KindBindingTernary, Attr: "[title]"},
		{Text: "Disabled", Line: 6, Kind: KindBindingTernary, Attr: "[title]"},
		{Text: "Active user", Line: 7, Kind: KindInterpolationTernary},
		{Text: "Inactive user", Line: 7, Kind: KindInterpolationTernary},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanControlFlowBlocks(t *testing.T) {
	src := `@if (user) {
  <p>Signed in</p>
} @else {
  Please sign in
}
@for (item of items; track item.id) {
  <li>{{ item.label }}</li>
} @empty {
  Nothing here yet
}
`
	var texts []string
	for _, c := range NewScanner().Scan([]byte(src)) {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"Signed in", "Please sign in", "Nothing here yet"}, texts)
}

func TestScanControlFlowHeadersWithCalls(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "if with signal condition",
			input:    "@if (isLoggedIn()) {\n  Welcome back\n} @else {\n  Please sign in\n}\n",
			expected: []string{"Welcome back", "Please sign in"},
		},
		{
			name:     "for with call and track",
			input:    "@for (x of xs(); track x.id) {\n  <li>Item label</li>\n} @empty {\n  Nothing here yet\n}\n",
			expected: []string{"Item label", "Nothing here yet"},
		},
		{
			name:     "switch with call and quoted cases",
			input:    "@switch (mode()) {\n  @case ('edit') {\n    Editing now\n  }\n  @default {\n    Viewing now\n  }\n}\n",
			expected: []string{"Editing now", "Viewing now"},
		},
		{
			name:     "defer with triggers and placeholder",
			input:    "@defer (on viewport; when ready()) {\n  Loaded content\n} @placeholder (minimum 500ms) {\n  Loading soon\n}\n",
			expected: []string{"Loaded content", "Loading soon"},
		},
		{
			name:     "else if with nested calls",
			input:    "@if (user()) {\n  Regular area\n} @else if (hasRole(user(), 'admin')) {\n  Admin area\n}\n",
			expected: []string{"Regular area", "Admin area"},
		},
		{
			name:     "parenthesis inside a string",
			input:    "@if (label() === 'a (b') {\n  Quoted paren\n}\n",
			expected: []string{"Quoted paren"},
		},
		{
			name:     "let declaration with calls",
			input:    "@let total = price() * qty();\n<p>Total amount</p>\n",
			expected: []string{"Total amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var texts []string
			for _, c := range NewScanner().Scan([]byte(tt.input)) {
				texts = append(texts, c.Text)
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestScanParenthesizedBindingTernary(t *testing.T) {
	got := NewScanner().Scan([]byte(`<span [title]="(isOn ? 'Yes sir' : 'No sir')"></span>`))

	want := []Candidate{
		{Text: "Yes sir", Line: 1, Kind: KindBindingTernary, Attr: "[title]"},
		{Text: "No sir", Line: 1, Kind: KindBindingTernary, Attr: "[title]"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}

	// a parenthesised condition is not an outer pair
	got = NewScanner().Scan([]byte(`<span [title]="(a && b) ? 'Both set' : 'Not both'"></span>`))
	assert.Len(t, got, 2)
}

func TestScanCollapsesWhitespaceAndEntities(t *testing.T) {
	src := "<p>\n  Terms &amp;\n  Conditions\n</p>"
	got := NewScanner().Scan([]byte(src))

	want := []Candidate{{Text: "Terms & Conditions", Line: 2, Kind: KindText}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanAttributes(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []string
		input    string
		expected []string
	}{
		{
			name:     "placeholder is translatable by default",
			input:    `<input placeholder='Search users'>`,
			expected: []string{"Search users"},
		},
		{
			name:     "other attributes are ignored by default",
			input:    `<img alt="Company logo" title="Logo">`,
			expected: nil,
		},
		{
			name:     "configured attributes",
			attrs:    []string{"alt", "title"},
			input:    `<img alt="Company logo" title="Our logo">`,
			expected: []string{"Company logo", "Our logo"},
		},
		{
			name:     "translated placeholder",
			input:    `<input placeholder="{{ 'text.search' | translate }}">`,
			expected: nil,
		},
		{
			name:     "interpolated ternary placeholder",
			input:    `<input placeholder="{{ admin ? 'Find admins' : 'Find users' }}">`,
			expected: []string{"Find admins", "Find users"},
		},
		{
			name:     "style bindings carry no text",
			input:    `<div [class]="on ? 'active-item' : 'idle-item'"></div>`,
			expected: nil,
		},
		{
			name:     "translated binding",
			input:    `<span [title]="(on ? 'text.on' : 'text.off') | translate"></span>`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, c := range NewScanner(tt.attrs...).Scan([]byte(tt.input)) {
				got = append(got, c.Text)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScanLengthBoundary(t *testing.T) {
	got := NewScanner().Scan([]byte("<b>ab</b><b>abc</b>"))
	assert.Equal(t, []Candidate{{Text: "abc", Line: 1, Kind: KindText}}, got)
}

func TestParseAttributes(t *testing.T) {
	raw := []byte(`<input #box [(ngModel)]="name" placeholder = 'Your name' disabled data-x=plain/>`)
	attrs := parseAttributes(raw)

	var names []string
	for _, a := range attrs {
		names = append(names, a.name)
	}
	assert.Equal(t, []string{"#box", "[(ngModel)]", "placeholder", "disabled", "data-x"}, names)

	placeholder := attrs[2]
	assert.Equal(t, "Your name", placeholder.value)
	assert.Equal(t, byte('\''), placeholder.quote)
	assert.Equal(t, "Your name", string(raw[placeholder.valueStart:placeholder.valueEnd]))
	assert.False(t, attrs[3].hasValue)
	assert.Equal(t, "plain/", attrs[4].value)
}
