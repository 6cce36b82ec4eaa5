// internal/utils/slug_test.go
package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{"basic title", []string{"2BHK Flat in Pune!"}, "2bhk-flat-in-pune"},
		{"joins parts", []string{"Sea View Villa", "Mumbai"}, "sea-view-villa-mumbai"},
		{"collapses runs", []string{"luxury   --  apartment"}, "luxury-apartment"},
		{"trims edges", []string{"  (Corner Plot)  "}, "corner-plot"},
		{"only punctuation", []string{"!!!"}, ""},
		{"empty input", []string{""}, ""},
		{"keeps digits", []string{"Flat No 42, Tower B"}, "flat-no-42-tower-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.parts...))
		})
	}
}

func TestSlugifyTruncatesLongTitles(t *testing.T) {
	slug := Slugify(strings.Repeat("spacious ", 40))

	assert.LessOrEqual(t, len(slug), 150)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestUniqueSlug(t *testing.T) {
	slug, err := UniqueSlug("2bhk-flat-in-pune")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^2bhk-flat-in-pune-[a-z0-9]{6}$`), slug)

	again, err := UniqueSlug("2bhk-flat-in-pune")
	require.NoError(t, err)
	assert.NotEqual(t, slug, again)
}
