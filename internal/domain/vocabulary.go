package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Vocabulary is one word, its definition and usage examples in a single
// language, owned by exactly one Domain.
type Vocabulary struct {
	ID         uuid.UUID `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	Examples   []string  `json:"examples"`
	Language   string    `json:"language"`
	DomainID   uuid.UUID `json:"domainId"`
	CreatedAt  time.Time `json:"-"`
}

type CreateVocabularyInput struct {
	DomainID    string   `json:"domainId"`
	Word        string   `json:"word"`
	Definition  string   `json:"definition"`
	Examples    []string `json:"examples,omitempty"`
	Language    string   `json:"language,omitempty"`
	TranslateTo []string `json:"translateTo,omitempty"`
}

// CreateVocabularyRequest is the body of POST /vocabulary: either a single
// entry or a batch under Translations.
type CreateVocabularyRequest struct {
	CreateVocabularyInput
	Translations []CreateVocabularyInput `json:"translations,omitempty"`
}

func (r CreateVocabularyRequest) IsBatch() bool {
	return len(r.Translations) > 0
}

// IsZero reports whether no single-entry field was sent. An explicitly empty
// examples or translateTo array counts as sent.
func (in CreateVocabularyInput) IsZero() bool {
	return in.DomainID == "" && in.Word == "" && in.Definition == "" && in.Language == "" &&
		in.Examples == nil && in.TranslateTo == nil
}

type VocabularyRepository interface {
	Create(ctx context.Context, v *Vocabulary) error
	// CreateBatch inserts all rows or none.
	CreateBatch(ctx context.Context, vs []*Vocabulary) error
	GetByID(ctx context.Context, id uuid.UUID) (*Vocabulary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDomainIDs(ctx context.Context, domainIDs []uuid.UUID) (int64, error)
}
