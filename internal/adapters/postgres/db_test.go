package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil, "dup"))

	err := classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "dup")
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "dup", err.(*domain.AppError).Message)

	err = classify(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), "dup")
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Domain not found", err.(*domain.AppError).Message)

	assert.True(t, domain.IsTimeout(classify(&pgconn.PgError{Code: pgerrcode.QueryCanceled}, "dup")))
	assert.True(t, domain.IsTimeout(classify(context.DeadlineExceeded, "dup")))

	notFound := domain.NewNotFoundError("Vocabulary")
	assert.Same(t, notFound, classify(notFound, "dup"))

	other := errors.New("connection reset")
	err = classify(other, "dup")
	assert.ErrorIs(t, err, other)
	assert.False(t, domain.IsConflict(err))
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, "0001", extractVersion("0001_create_domains_vocabularies.up.sql"))
	assert.Equal(t, "init.sql", extractVersion("init.sql"))
}
