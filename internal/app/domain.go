package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type DomainService struct {
	domainRepo domain.DomainRepository
}

func NewDomainService(domainRepo domain.DomainRepository) *DomainService {
	return &DomainService{domainRepo: domainRepo}
}

func (s *DomainService) Create(ctx context.Context, input domain.CreateDomainInput) (*domain.Domain, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError(map[string]string{
			"name": "Domain name is required",
		})
	}

	existing, err := s.domainRepo.GetByName(ctx, name)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("A domain with this name already exists")
	}

	d := &domain.Domain{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.domainRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	d.Vocabularies = []domain.Vocabulary{}
	return d, nil
}

// Upsert returns the domain whose name matches case-insensitively, creating
// it when absent. An existing domain is never modified.
func (s *DomainService) Upsert(ctx context.Context, name, description string) (*domain.Domain, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, domain.NewValidationError(map[string]string{
			"name": "Domain name is required",
		})
	}

	existing, err := s.domainRepo.GetByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !domain.IsNotFound(err) {
		return nil, false, err
	}

	d := &domain.Domain{Name: name, Description: strings.TrimSpace(description)}
	if err := s.domainRepo.Create(ctx, d); err != nil {
		if domain.IsConflict(err) {
			// Lost a race with a concurrent creator.
			existing, getErr := s.domainRepo.GetByName(ctx, name)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return d, true, nil
}

func (s *DomainService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	return s.domainRepo.GetByID(ctx, id)
}

func (s *DomainService) List(ctx context.Context, opts domain.ListDomainsOptions) ([]domain.Domain, error) {
	if opts.Language != "" {
		lang, err := domain.NormalizeLanguage(opts.Language)
		if err != nil {
			return nil, domain.NewValidationError(map[string]string{
				"language": "Language must be a valid language tag",
			})
		}
		opts.Language = lang
		opts.IncludeVocabulary = true
	}
	return s.domainRepo.List(ctx, opts)
}

func (s *DomainService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.domainRepo.Delete(ctx, id)
}

func (s *DomainService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.domainRepo.Stats(ctx)
}
