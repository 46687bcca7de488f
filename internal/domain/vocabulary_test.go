package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateVocabularyInputIsZero(t *testing.T) {
	assert.True(t, CreateVocabularyInput{}.IsZero())
	assert.False(t, CreateVocabularyInput{DomainID: "x"}.IsZero())
	assert.False(t, CreateVocabularyInput{Language: "es"}.IsZero())
	assert.False(t, CreateVocabularyInput{Examples: []string{}}.IsZero())
	assert.False(t, CreateVocabularyInput{TranslateTo: []string{}}.IsZero())
}
