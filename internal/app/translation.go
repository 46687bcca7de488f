package app

import (
	"context"
	"strings"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type TranslationService struct {
	translator domain.Translator
}

func NewTranslationService(translator domain.Translator) *TranslationService {
	return &TranslationService{translator: translator}
}

// Translate only requires the three fields to be present. Language tags are
// passed through unvalidated; an unknown tag simply finds no translation.
func (s *TranslationService) Translate(ctx context.Context, input domain.TranslateInput) (*domain.TranslateResult, error) {
	details := map[string]string{}
	if strings.TrimSpace(input.Text) == "" {
		details["text"] = "Text is required"
	}
	if strings.TrimSpace(input.From) == "" {
		details["from"] = "Source language is required"
	}
	if strings.TrimSpace(input.To) == "" {
		details["to"] = "Target language is required"
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError(details)
	}

	translated, found, err := s.translator.Translate(ctx, input.Text, strings.TrimSpace(input.From), strings.TrimSpace(input.To))
	if err != nil {
		return nil, err
	}
	return &domain.TranslateResult{TranslatedText: translated, Translated: found}, nil
}
