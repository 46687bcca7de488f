// Package memory keeps domains and vocabulary in process memory. It enforces
// the same constraints as the postgres schema and backs the service and
// handler tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	domains []domain.Domain
	vocab   []domain.Vocabulary
	now     func() time.Time

	// AllowDuplicateNames mimics a database created before the unique
	// domain name index existed.
	AllowDuplicateNames bool
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Domains() *DomainRepository {
	return &DomainRepository{s: s}
}

func (s *Store) Vocabulary() *VocabularyRepository {
	return &VocabularyRepository{s: s}
}

func (s *Store) domainIndex(id uuid.UUID) int {
	for i := range s.domains {
		if s.domains[i].ID == id {
			return i
		}
	}
	return -1
}

func vocabKey(v *domain.Vocabulary) string {
	return v.DomainID.String() + "|" + v.Language + "|" + strings.ToLower(v.Word)
}

// checkVocabulary applies the foreign key and unique constraints to v against
// the stored rows plus pending.
func (s *Store) checkVocabulary(v *domain.Vocabulary, pending map[string]bool) error {
	if s.domainIndex(v.DomainID) < 0 {
		return domain.NewNotFoundError("Domain")
	}
	key := vocabKey(v)
	if pending[key] {
		return domain.NewConflictError("This word already exists in this domain for that language")
	}
	for i := range s.vocab {
		if vocabKey(&s.vocab[i]) == key {
			return domain.NewConflictError("This word already exists in this domain for that language")
		}
	}
	return nil
}

func (s *Store) prepare(v *domain.Vocabulary) {
	v.ID = uuid.New()
	v.CreatedAt = s.now()
	if v.Examples == nil {
		v.Examples = []string{}
	}
	if v.Language == "" {
		v.Language = domain.DefaultLanguage
	}
}

func copyVocabulary(v domain.Vocabulary) domain.Vocabulary {
	v.Examples = append([]string{}, v.Examples...)
	return v
}

type DomainRepository struct {
	s *Store
}

func (r *DomainRepository) Create(ctx context.Context, d *domain.Domain) error {
	if err := ctx.Err(); err != nil {
		return domain.NewTimeoutError("Database operation").WithError(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.AllowDuplicateNames {
		for _, existing := range r.s.domains {
			if domain.NameKey(existing.Name) == domain.NameKey(d.Name) {
				return domain.NewConflictError("A domain with this name already exists")
			}
		}
	}

	d.ID = uuid.New()
	d.CreatedAt = r.s.now()
	stored := *d
	stored.Vocabularies = nil
	r.s.domains = append(r.s.domains, stored)
	return nil
}

func (r *DomainRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := r.s.domainIndex(id)
	if i < 0 {
		return nil, domain.NewNotFoundError("Domain")
	}
	d := r.s.domains[i]
	d.Vocabularies = r.vocabularyOf(d.ID, "")
	return &d, nil
}

func (r *DomainRepository) GetByName(ctx context.Context, name string) (*domain.Domain, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.domains {
		if domain.NameKey(d.Name) == domain.NameKey(name) {
			d.Vocabularies = []domain.Vocabulary{}
			return &d, nil
		}
	}
	return nil, domain.NewNotFoundError("Domain")
}

func (r *DomainRepository) List(ctx context.Context, opts domain.ListDomainsOptions) ([]domain.Domain, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Domain, 0, len(r.s.domains))
	for _, d := range r.s.domains {
		d.Vocabularies = []domain.Vocabulary{}
		if opts.IncludeVocabulary {
			d.Vocabularies = r.vocabularyOf(d.ID, opts.Language)
		}
		out = append(out, d)
	}
	return out, nil
}

// vocabularyOf must be called with the lock held.
func (r *DomainRepository) vocabularyOf(id uuid.UUID, language string) []domain.Vocabulary {
	out := []domain.Vocabulary{}
	for _, v := range r.s.vocab {
		if v.DomainID == id && (language == "" || v.Language == language) {
			out = append(out, copyVocabulary(v))
		}
	}
	return out
}

func (r *DomainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.domainIndex(id)
	if i < 0 {
		return domain.NewNotFoundError("Domain")
	}
	r.s.removeVocabulary(func(v domain.Vocabulary) bool { return v.DomainID == id })
	r.s.domains = append(r.s.domains[:i], r.s.domains[i+1:]...)
	return nil
}

func (r *DomainRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	drop := map[uuid.UUID]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	for _, v := range r.s.vocab {
		if drop[v.DomainID] {
			return 0, domain.NewConflictError("Domain still has vocabulary")
		}
	}

	kept := r.s.domains[:0]
	var n int64
	for _, d := range r.s.domains {
		if drop[d.ID] {
			n++
			continue
		}
		kept = append(kept, d)
	}
	r.s.domains = kept
	return n, nil
}

func (r *DomainRepository) Purge(ctx context.Context, ids []uuid.UUID) (int64, int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, domain.NewTimeoutError("Database operation").WithError(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	drop := map[uuid.UUID]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	vocabulary := r.s.removeVocabulary(func(v domain.Vocabulary) bool { return drop[v.DomainID] })

	kept := r.s.domains[:0]
	var domains int64
	for _, d := range r.s.domains {
		if drop[d.ID] {
			domains++
			continue
		}
		kept = append(kept, d)
	}
	r.s.domains = kept
	return domains, vocabulary, nil
}

func (r *DomainRepository) Wipe(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.vocab = nil
	r.s.domains = nil
	return nil
}

func (r *DomainRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &domain.Stats{
		Domains:    int64(len(r.s.domains)),
		Vocabulary: int64(len(r.s.vocab)),
		ByLanguage: map[string]int64{},
	}
	for _, v := range r.s.vocab {
		stats.ByLanguage[v.Language]++
	}
	return stats, nil
}

// removeVocabulary must be called with the lock held.
func (s *Store) removeVocabulary(match func(domain.Vocabulary) bool) int64 {
	kept := s.vocab[:0]
	var n int64
	for _, v := range s.vocab {
		if match(v) {
			n++
			continue
		}
		kept = append(kept, v)
	}
	s.vocab = kept
	return n
}

type VocabularyRepository struct {
	s *Store
}

func (r *VocabularyRepository) Create(ctx context.Context, v *domain.Vocabulary) error {
	if err := ctx.Err(); err != nil {
		return domain.NewTimeoutError("Database operation").WithError(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkVocabulary(v, nil); err != nil {
		return err
	}
	r.s.prepare(v)
	r.s.vocab = append(r.s.vocab, copyVocabulary(*v))
	return nil
}

func (r *VocabularyRepository) CreateBatch(ctx context.Context, vs []*domain.Vocabulary) error {
	if err := ctx.Err(); err != nil {
		return domain.NewTimeoutError("Database operation").WithError(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	pending := map[string]bool{}
	for _, v := range vs {
		if err := r.s.checkVocabulary(v, pending); err != nil {
			return err
		}
		pending[vocabKey(v)] = true
	}
	for _, v := range vs {
		r.s.prepare(v)
		r.s.vocab = append(r.s.vocab, copyVocabulary(*v))
	}
	return nil
}

func (r *VocabularyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, v := range r.s.vocab {
		if v.ID == id {
			out := copyVocabulary(v)
			return &out, nil
		}
	}
	return nil, domain.NewNotFoundError("Vocabulary")
}

func (r *VocabularyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.removeVocabulary(func(v domain.Vocabulary) bool { return v.ID == id }) == 0 {
		return domain.NewNotFoundError("Vocabulary")
	}
	return nil
}

func (r *VocabularyRepository) DeleteByDomainIDs(ctx context.Context, domainIDs []uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	drop := map[uuid.UUID]bool{}
	for _, id := range domainIDs {
		drop[id] = true
	}
	return r.s.removeVocabulary(func(v domain.Vocabulary) bool { return drop[v.DomainID] }), nil
}

var (
	_ domain.DomainRepository     = (*DomainRepository)(nil)
	_ domain.VocabularyRepository = (*VocabularyRepository)(nil)
)
