package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/napalu/goopt/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	require.NoError(t, bundle.AddLanguage(language.English, map[string]string{
		"app.error.catalog_parse":    "failed to parse translation file %s",
		"app.error.source_not_found": "source path does not exist: %s",
	}))
	return bundle
}

func TestFormat(t *testing.T) {
	bundle := newTestBundle(t)

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			expected: "boom",
		},
		{
			name:     "translatable error with args",
			err:      ErrSourceNotFound.WithArgs("./src"),
			expected: "source path does not exist: ./src",
		},
		{
			name:     "translatable error wrapping a cause",
			err:      ErrCatalogParse.WithArgs("en.json").Wrap(fmt.Errorf("unexpected EOF")),
			expected: "failed to parse translation file en.json: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(bundle, tt.err))
		})
	}
}

func TestSentinelsMatchWithArgs(t *testing.T) {
	err := ErrCatalogRead.WithArgs("en.json").Wrap(fmt.Errorf("permission denied"))
	assert.True(t, stderrors.Is(err, ErrCatalogRead))
	assert.False(t, stderrors.Is(err, ErrCatalogParse))
}
