package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

// MaintenanceService runs the out-of-band routines: seeding, importing,
// deduplication and full wipes. None of them is reachable over HTTP.
type MaintenanceService struct {
	domains    *DomainService
	domainRepo domain.DomainRepository
	vocabRepo  domain.VocabularyRepository
}

func NewMaintenanceService(domainRepo domain.DomainRepository, vocabRepo domain.VocabularyRepository) *MaintenanceService {
	return &MaintenanceService{
		domains:    NewDomainService(domainRepo),
		domainRepo: domainRepo,
		vocabRepo:  vocabRepo,
	}
}

type SeedReport struct {
	DomainsCreated    int
	DomainsExisting   int
	VocabularyCreated int
	VocabularySkipped int
}

func (r SeedReport) String() string {
	return fmt.Sprintf("domains: %d created, %d existing; vocabulary: %d created, %d skipped",
		r.DomainsCreated, r.DomainsExisting, r.VocabularyCreated, r.VocabularySkipped)
}

// Seed upserts every catalog domain and inserts its terms. Terms that already
// exist are skipped, so running Seed again leaves the store unchanged.
func (s *MaintenanceService) Seed(ctx context.Context, catalog *Catalog) (*SeedReport, error) {
	report := &SeedReport{}

	for _, cd := range catalog.Domains {
		d, created, err := s.domains.Upsert(ctx, cd.Name, cd.Description)
		if err != nil {
			return report, fmt.Errorf("upsert domain %q: %w", cd.Name, err)
		}
		if created {
			report.DomainsCreated++
			log.Printf("[Seed] Created domain %q (%s)", d.Name, d.ID)
		} else {
			report.DomainsExisting++
		}

		for _, term := range cd.Terms {
			ok, err := s.insertTerm(ctx, d, term.Word, term.Definition, term.Language, term.Examples)
			if err != nil {
				return report, err
			}
			if ok {
				report.VocabularyCreated++
			} else {
				report.VocabularySkipped++
			}
		}
	}

	log.Printf("[Seed] Completed: %s", report)
	return report, nil
}

type ImportReport struct {
	Created int
	Skipped int
	Errors  []string
}

// Import stores rows the way Seed stores catalog terms. A row without a
// domain goes to defaultDomain. Invalid rows are collected in the report
// instead of aborting the run.
func (s *MaintenanceService) Import(ctx context.Context, rows []domain.ImportRow, defaultDomain string) (*ImportReport, error) {
	report := &ImportReport{}
	domains := map[string]*domain.Domain{}

	for _, row := range rows {
		name := strings.TrimSpace(row.Domain)
		if name == "" {
			name = defaultDomain
		}
		if name == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: no domain", row.Line))
			continue
		}

		d, ok := domains[domain.NameKey(name)]
		if !ok {
			var err error
			d, _, err = s.domains.Upsert(ctx, name, "")
			if err != nil {
				return report, fmt.Errorf("upsert domain %q: %w", name, err)
			}
			domains[domain.NameKey(name)] = d
		}

		created, err := s.insertTerm(ctx, d, row.Word, row.Definition, row.Language, row.Examples)
		if err != nil {
			if domain.IsValidation(err) {
				report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", row.Line, validationSummary(err)))
				continue
			}
			return report, err
		}
		if created {
			report.Created++
		} else {
			report.Skipped++
		}
	}

	log.Printf("[Import] Completed: %d created, %d skipped, %d errors", report.Created, report.Skipped, len(report.Errors))
	return report, nil
}

// insertTerm reports false when the (word, language, domain) triple already
// exists.
func (s *MaintenanceService) insertTerm(ctx context.Context, d *domain.Domain, word, definition, language string, examples []string) (bool, error) {
	v, details := buildVocabulary(domain.CreateVocabularyInput{
		DomainID:   d.ID.String(),
		Word:       word,
		Definition: definition,
		Examples:   examples,
		Language:   language,
	}, "")
	if len(details) > 0 {
		return false, domain.NewValidationError(details)
	}

	if err := s.vocabRepo.Create(ctx, v); err != nil {
		if domain.IsConflict(err) {
			log.Printf("[Seed] Skipping %q (%s) in %q: already exists", v.Word, v.Language, d.Name)
			return false, nil
		}
		return false, fmt.Errorf("create vocabulary %q in %q: %w", v.Word, d.Name, err)
	}
	return true, nil
}

type DedupeReport struct {
	Groups  int
	Removed int
	Kept    []uuid.UUID
}

// FindDuplicates groups domains by case-folded name and returns every group
// with more than one member. Members keep insertion order.
func (s *MaintenanceService) FindDuplicates(ctx context.Context) ([]domain.DuplicateGroup, error) {
	domains, err := s.domainRepo.List(ctx, domain.ListDomainsOptions{})
	if err != nil {
		return nil, err
	}
	return groupDuplicates(domains), nil
}

// Dedupe keeps the first domain of each duplicate group and deletes the
// others together with their vocabulary. With dryRun it only reports.
func (s *MaintenanceService) Dedupe(ctx context.Context, dryRun bool) (*DedupeReport, error) {
	groups, err := s.FindDuplicates(ctx)
	if err != nil {
		return nil, err
	}

	report := &DedupeReport{Groups: len(groups)}
	for _, g := range groups {
		keep, remove := g.Domains[0], g.Domains[1:]
		ids := make([]uuid.UUID, len(remove))
		for i, d := range remove {
			ids[i] = d.ID
		}
		ids = domain.UniqueIDs(ids)

		log.Printf("[Dedupe] Keeping domain %q with ID %s, removing %d duplicates", g.Name, keep.ID, len(remove))
		report.Kept = append(report.Kept, keep.ID)
		if dryRun {
			report.Removed += len(remove)
			continue
		}

		n, vocab, err := s.domainRepo.Purge(ctx, ids)
		if err != nil {
			return report, fmt.Errorf("delete duplicates of %q: %w", g.Name, err)
		}
		report.Removed += int(n)
		log.Printf("[Dedupe] Removed %d domains and %d vocabulary rows for %q", n, vocab, g.Name)
	}

	log.Printf("[Dedupe] Completed: %d groups, %d domains removed", report.Groups, report.Removed)
	return report, nil
}

// Wipe removes all vocabulary and all domains.
func (s *MaintenanceService) Wipe(ctx context.Context) error {
	if err := s.domainRepo.Wipe(ctx); err != nil {
		return err
	}
	log.Println("[Wipe] All vocabulary and domains deleted")
	return nil
}

func groupDuplicates(domains []domain.Domain) []domain.DuplicateGroup {
	var order []string
	byKey := map[string][]domain.Domain{}
	for _, d := range domains {
		key := domain.NameKey(d.Name)
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], d)
	}

	var groups []domain.DuplicateGroup
	for _, key := range order {
		if members := byKey[key]; len(members) > 1 {
			groups = append(groups, domain.DuplicateGroup{Name: members[0].Name, Domains: members})
		}
	}
	return groups
}

func validationSummary(err error) string {
	appErr, ok := err.(*domain.AppError)
	if !ok || len(appErr.Details) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(appErr.Details))
	for field, msg := range appErr.Details {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
