package app_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := app.DefaultCatalog()
	require.NoError(t, err)

	names := make([]string, len(c.Domains))
	for i, d := range c.Domains {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"Technology", "Business", "Science"}, names)

	for _, d := range c.Domains {
		english := 0
		seen := map[string]bool{}
		for _, term := range d.Terms {
			lang, err := domain.NormalizeLanguage(term.Language)
			require.NoError(t, err)
			if lang == "en" {
				english++
			}
			key := lang + "|" + strings.ToLower(term.Word)
			assert.False(t, seen[key], "duplicate term %s in %s", key, d.Name)
			seen[key] = true
			assert.NotEmpty(t, term.Definition)
		}
		assert.Equal(t, 10, english, d.Name)
	}
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	_, err := app.LoadCatalog(strings.NewReader(`
domains:
  - name: Art
    colour: red
`))
	assert.Error(t, err)
}
