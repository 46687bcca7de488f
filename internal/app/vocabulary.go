package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type VocabularyService struct {
	vocabRepo  domain.VocabularyRepository
	translator domain.Translator
}

func NewVocabularyService(vocabRepo domain.VocabularyRepository, translator domain.Translator) *VocabularyService {
	return &VocabularyService{vocabRepo: vocabRepo, translator: translator}
}

// Create stores one entry. When input.TranslateTo is set the entry is
// expanded into one row per target language and everything is stored
// atomically; the source row comes first in the result.
func (s *VocabularyService) Create(ctx context.Context, input domain.CreateVocabularyInput) ([]domain.Vocabulary, error) {
	v, details := buildVocabulary(input, "")
	if len(details) > 0 {
		return nil, domain.NewValidationError(details)
	}

	if len(input.TranslateTo) == 0 {
		if err := s.vocabRepo.Create(ctx, v); err != nil {
			return nil, err
		}
		return []domain.Vocabulary{*v}, nil
	}

	targets, details := targetLanguages(v.Language, input.TranslateTo)
	if len(details) > 0 {
		return nil, domain.NewValidationError(details)
	}

	translated, err := s.expand(ctx, v, targets)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, append([]*domain.Vocabulary{v}, translated...))
}

// CreateBatch validates every entry before touching the store, then inserts
// all of them in one transaction.
func (s *VocabularyService) CreateBatch(ctx context.Context, inputs []domain.CreateVocabularyInput) ([]domain.Vocabulary, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError(map[string]string{
			"translations": "At least one entry is required",
		})
	}

	details := map[string]string{}
	vs := make([]*domain.Vocabulary, 0, len(inputs))
	for i, input := range inputs {
		prefix := fmt.Sprintf("translations[%d].", i)
		v, d := buildVocabulary(input, prefix)
		for k, msg := range d {
			details[k] = msg
		}
		if input.TranslateTo != nil {
			details[prefix+"translateTo"] = "translateTo is only allowed on a single entry"
		}
		vs = append(vs, v)
	}
	if len(details) > 0 {
		return nil, domain.NewValidationError(details)
	}

	return s.store(ctx, vs)
}

func (s *VocabularyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	return s.vocabRepo.GetByID(ctx, id)
}

func (s *VocabularyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.vocabRepo.Delete(ctx, id)
}

func (s *VocabularyService) store(ctx context.Context, vs []*domain.Vocabulary) ([]domain.Vocabulary, error) {
	if err := s.vocabRepo.CreateBatch(ctx, vs); err != nil {
		return nil, err
	}
	out := make([]domain.Vocabulary, len(vs))
	for i, v := range vs {
		out[i] = *v
	}
	return out, nil
}

// expand translates the source entry into every target language
// concurrently. Fields without a known translation keep the source text.
func (s *VocabularyService) expand(ctx context.Context, src *domain.Vocabulary, targets []string) ([]*domain.Vocabulary, error) {
	out := make([]*domain.Vocabulary, len(targets))
	g, gctx := errgroup.WithContext(ctx)

	for i, lang := range targets {
		i, lang := i, lang
		g.Go(func() error {
			v := &domain.Vocabulary{
				DomainID: src.DomainID,
				Language: lang,
				Examples: make([]string, len(src.Examples)),
			}
			var err error
			if v.Word, err = s.translate(gctx, src.Word, src.Language, lang); err != nil {
				return err
			}
			if v.Definition, err = s.translate(gctx, src.Definition, src.Language, lang); err != nil {
				return err
			}
			for j, example := range src.Examples {
				if v.Examples[j], err = s.translate(gctx, example, src.Language, lang); err != nil {
					return err
				}
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VocabularyService) translate(ctx context.Context, text, from, to string) (string, error) {
	translated, _, err := s.translator.Translate(ctx, text, from, to)
	if err != nil {
		return "", fmt.Errorf("translate %q to %s: %w", text, to, err)
	}
	return translated, nil
}

// buildVocabulary validates input. Detail keys are prefixed so batch errors
// point at the offending entry.
func buildVocabulary(input domain.CreateVocabularyInput, prefix string) (*domain.Vocabulary, map[string]string) {
	details := map[string]string{}
	v := &domain.Vocabulary{
		Word:       strings.TrimSpace(input.Word),
		Definition: strings.TrimSpace(input.Definition),
		Examples:   domain.CleanExamples(input.Examples),
	}

	if strings.TrimSpace(input.DomainID) == "" {
		details[prefix+"domainId"] = "Domain is required"
	} else if id, err := uuid.Parse(strings.TrimSpace(input.DomainID)); err != nil {
		details[prefix+"domainId"] = "Domain ID must be a valid UUID"
	} else {
		v.DomainID = id
	}
	if v.Word == "" {
		details[prefix+"word"] = "Word is required"
	}
	if v.Definition == "" {
		details[prefix+"definition"] = "Definition is required"
	}

	lang, err := domain.NormalizeLanguage(input.Language)
	if err != nil {
		details[prefix+"language"] = "Language must be a valid language tag"
	}
	v.Language = lang

	return v, details
}

func targetLanguages(source string, requested []string) ([]string, map[string]string) {
	seen := map[string]bool{source: true}
	var targets []string
	for i, tag := range requested {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		lang, err := domain.NormalizeLanguage(tag)
		if err != nil {
			return nil, map[string]string{
				fmt.Sprintf("translateTo[%d]", i): "Language must be a valid language tag",
			}
		}
		if seen[lang] {
			continue
		}
		seen[lang] = true
		targets = append(targets, lang)
	}
	return targets, nil
}
