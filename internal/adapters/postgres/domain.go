package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

const domainConflict = "A domain with this name already exists"

type DomainRepository struct {
	conn
}

func NewDomainRepository(db *pgxpool.Pool, timeout time.Duration) *DomainRepository {
	return &DomainRepository{conn: newConn(db, timeout)}
}

func (r *DomainRepository) Create(ctx context.Context, d *domain.Domain) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	d.ID = uuid.New()
	d.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx,
		`INSERT INTO domains (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)`,
		d.ID, d.Name, d.Description, d.CreatedAt,
	)
	return classify(err, domainConflict)
}

func (r *DomainRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	d := &domain.Domain{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM domains WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("Domain")
		}
		return nil, classify(err, domainConflict)
	}

	vocab, err := r.vocabulary(ctx, []uuid.UUID{d.ID}, "")
	if err != nil {
		return nil, err
	}
	d.Vocabularies = vocab[d.ID]
	if d.Vocabularies == nil {
		d.Vocabularies = []domain.Vocabulary{}
	}
	return d, nil
}

func (r *DomainRepository) GetByName(ctx context.Context, name string) (*domain.Domain, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	d := &domain.Domain{Vocabularies: []domain.Vocabulary{}}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM domains
		WHERE lower(name) = lower($1)
		ORDER BY created_at, id LIMIT 1`, name,
	).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("Domain")
		}
		return nil, classify(err, domainConflict)
	}
	return d, nil
}

func (r *DomainRepository) List(ctx context.Context, opts domain.ListDomainsOptions) ([]domain.Domain, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, created_at FROM domains ORDER BY created_at, id`)
	if err != nil {
		return nil, classify(err, domainConflict)
	}
	defer rows.Close()

	domains := []domain.Domain{}
	for rows.Next() {
		d := domain.Domain{Vocabularies: []domain.Vocabulary{}}
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt); err != nil {
			return nil, classify(err, domainConflict)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, domainConflict)
	}

	if !opts.IncludeVocabulary || len(domains) == 0 {
		return domains, nil
	}

	ids := make([]uuid.UUID, len(domains))
	for i, d := range domains {
		ids[i] = d.ID
	}
	vocab, err := r.vocabulary(ctx, ids, opts.Language)
	if err != nil {
		return nil, err
	}
	for i := range domains {
		if vs, ok := vocab[domains[i].ID]; ok {
			domains[i].Vocabularies = vs
		}
	}
	return domains, nil
}

// vocabulary loads the vocabulary of the given domains, optionally restricted
// to one language, keyed by domain id.
func (r *DomainRepository) vocabulary(ctx context.Context, domainIDs []uuid.UUID, language string) (map[uuid.UUID][]domain.Vocabulary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+vocabularyColumns+` FROM vocabularies
		WHERE domain_id = ANY($1::uuid[]) AND ($2::text = '' OR language = $2::text)
		ORDER BY created_at, id`,
		domainIDs, language,
	)
	if err != nil {
		return nil, classify(err, vocabularyConflict)
	}
	defer rows.Close()

	out := map[uuid.UUID][]domain.Vocabulary{}
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, classify(err, vocabularyConflict)
		}
		out[v.DomainID] = append(out[v.DomainID], *v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, vocabularyConflict)
	}
	return out, nil
}

func (r *DomainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return classify(r.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM vocabularies WHERE domain_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM domains WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.NewNotFoundError("Domain")
		}
		return nil
	}), domainConflict)
}

// DeleteByIDs expects the vocabulary of ids to be gone already; the foreign
// key rejects the delete otherwise.
func (r *DomainRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, cancel := r.bound(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM domains WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, classify(err, domainConflict)
	}
	return tag.RowsAffected(), nil
}

func (r *DomainRepository) Purge(ctx context.Context, ids []uuid.UUID) (int64, int64, error) {
	if len(ids) == 0 {
		return 0, 0, nil
	}

	var domains, vocabulary int64
	err := r.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM vocabularies WHERE domain_id = ANY($1::uuid[])`, ids)
		if err != nil {
			return err
		}
		vocabulary = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM domains WHERE id = ANY($1::uuid[])`, ids)
		if err != nil {
			return err
		}
		domains = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, 0, classify(err, domainConflict)
	}
	return domains, vocabulary, nil
}

func (r *DomainRepository) Wipe(ctx context.Context) error {
	return classify(r.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM vocabularies`); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM domains`)
		return err
	}), domainConflict)
}

func (r *DomainRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	stats := &domain.Stats{ByLanguage: map[string]int64{}}
	err := r.db.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM domains), (SELECT COUNT(*) FROM vocabularies)`,
	).Scan(&stats.Domains, &stats.Vocabulary)
	if err != nil {
		return nil, classify(err, domainConflict)
	}

	rows, err := r.db.Query(ctx,
		`SELECT language, COUNT(*) FROM vocabularies GROUP BY language ORDER BY language`)
	if err != nil {
		return nil, classify(err, domainConflict)
	}
	defer rows.Close()

	for rows.Next() {
		var lang string
		var n int64
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, classify(err, domainConflict)
		}
		stats.ByLanguage[lang] = n
	}
	return stats, classify(rows.Err(), domainConflict)
}
