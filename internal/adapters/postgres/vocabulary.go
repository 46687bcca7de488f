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

const (
	vocabularyConflict = "This word already exists in this domain for that language"
	vocabularyColumns  = "id, domain_id, word, definition, examples, language, created_at"
	insertVocabulary   = `INSERT INTO vocabularies (id, domain_id, word, definition, examples, language, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

type VocabularyRepository struct {
	conn
}

func NewVocabularyRepository(db *pgxpool.Pool, timeout time.Duration) *VocabularyRepository {
	return &VocabularyRepository{conn: newConn(db, timeout)}
}

func prepareVocabulary(v *domain.Vocabulary, now time.Time) {
	v.ID = uuid.New()
	v.CreatedAt = now
	if v.Examples == nil {
		v.Examples = []string{}
	}
	if v.Language == "" {
		v.Language = domain.DefaultLanguage
	}
}

func (r *VocabularyRepository) Create(ctx context.Context, v *domain.Vocabulary) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	prepareVocabulary(v, time.Now())
	_, err := r.db.Exec(ctx, insertVocabulary,
		v.ID, v.DomainID, v.Word, v.Definition, v.Examples, v.Language, v.CreatedAt,
	)
	return classify(err, vocabularyConflict)
}

// CreateBatch pipelines every insert in a single transaction, so either all
// rows become visible or none do.
func (r *VocabularyRepository) CreateBatch(ctx context.Context, vs []*domain.Vocabulary) error {
	if len(vs) == 0 {
		return nil
	}

	now := time.Now()
	batch := &pgx.Batch{}
	for _, v := range vs {
		prepareVocabulary(v, now)
		batch.Queue(insertVocabulary,
			v.ID, v.DomainID, v.Word, v.Definition, v.Examples, v.Language, v.CreatedAt,
		)
	}

	return classify(r.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for range vs {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return err
			}
		}
		return br.Close()
	}), vocabularyConflict)
}

func (r *VocabularyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	v, err := scanVocabulary(r.db.QueryRow(ctx,
		`SELECT `+vocabularyColumns+` FROM vocabularies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("Vocabulary")
		}
		return nil, classify(err, vocabularyConflict)
	}
	return v, nil
}

func (r *VocabularyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM vocabularies WHERE id = $1`, id)
	if err != nil {
		return classify(err, vocabularyConflict)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("Vocabulary")
	}
	return nil
}

func (r *VocabularyRepository) DeleteByDomainIDs(ctx context.Context, domainIDs []uuid.UUID) (int64, error) {
	if len(domainIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := r.bound(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM vocabularies WHERE domain_id = ANY($1::uuid[])`, domainIDs)
	if err != nil {
		return 0, classify(err, vocabularyConflict)
	}
	return tag.RowsAffected(), nil
}

func scanVocabulary(row pgx.Row) (*domain.Vocabulary, error) {
	v := &domain.Vocabulary{}
	if err := row.Scan(&v.ID, &v.DomainID, &v.Word, &v.Definition, &v.Examples, &v.Language, &v.CreatedAt); err != nil {
		return nil, err
	}
	if v.Examples == nil {
		v.Examples = []string{}
	}
	return v, nil
}
