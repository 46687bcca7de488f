package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Domain is a named topical category that owns vocabulary entries.
type Domain struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Vocabularies []Vocabulary `json:"vocabularies"`
	CreatedAt    time.Time    `json:"-"`
}

type CreateDomainInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListDomainsOptions controls eager loading of vocabulary. An empty Language
// loads every language.
type ListDomainsOptions struct {
	IncludeVocabulary bool
	Language          string
}

// DuplicateGroup is a set of domains sharing one case-folded name, in
// insertion order.
type DuplicateGroup struct {
	Name    string
	Domains []Domain
}

type DomainRepository interface {
	Create(ctx context.Context, d *Domain) error
	GetByID(ctx context.Context, id uuid.UUID) (*Domain, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (*Domain, error)
	// List returns domains in insertion order.
	List(ctx context.Context, opts ListDomainsOptions) ([]Domain, error)
	// Delete removes the domain together with its vocabulary.
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	// Purge deletes the vocabulary of ids and then the domains themselves in
	// one transaction, returning the domain and vocabulary row counts.
	Purge(ctx context.Context, ids []uuid.UUID) (domains int64, vocabulary int64, err error)
	// Wipe deletes every vocabulary row, then every domain.
	Wipe(ctx context.Context) error
	Stats(ctx context.Context) (*Stats, error)
}

type Stats struct {
	Domains    int64            `json:"domains"`
	Vocabulary int64            `json:"vocabulary"`
	ByLanguage map[string]int64 `json:"byLanguage"`
}
