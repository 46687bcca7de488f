package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
	"github.com/willianpsouza/VocabularyPlatform/migrations"
)

// openTestDB connects to TEST_DATABASE_URL, applies the migrations and
// empties the tables. Tests are skipped without it.
func openTestDB(t *testing.T) (*DomainRepository, *VocabularyRepository) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, config.DatabaseConfig{URL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool, migrations.FS, Up))

	domains := NewDomainRepository(pool, 5*time.Second)
	require.NoError(t, domains.Wipe(ctx))
	return domains, NewVocabularyRepository(pool, 5*time.Second)
}

func TestRepositories(t *testing.T) {
	domains, vocab := openTestDB(t)
	ctx := context.Background()

	tech := &domain.Domain{Name: "Technology", Description: "Tech"}
	require.NoError(t, domains.Create(ctx, tech))
	assert.True(t, domain.IsConflict(domains.Create(ctx, &domain.Domain{Name: "technology"})))

	science := &domain.Domain{Name: "Science"}
	require.NoError(t, domains.Create(ctx, science))

	found, err := domains.GetByName(ctx, "TECHNOLOGY")
	require.NoError(t, err)
	assert.Equal(t, tech.ID, found.ID)

	api := &domain.Vocabulary{DomainID: tech.ID, Word: "API", Definition: "Interface"}
	require.NoError(t, vocab.Create(ctx, api))
	assert.Equal(t, "en", api.Language)
	assert.True(t, domain.IsConflict(vocab.Create(ctx, &domain.Vocabulary{DomainID: tech.ID, Word: "api", Definition: "x", Language: "en"})))
	assert.True(t, domain.IsNotFound(vocab.Create(ctx, &domain.Vocabulary{DomainID: uuid.New(), Word: "x", Definition: "x"})))

	err = vocab.CreateBatch(ctx, []*domain.Vocabulary{
		{DomainID: science.ID, Word: "Theory", Definition: "An explanation", Examples: []string{"Relativity"}},
		{DomainID: science.ID, Word: "Theorie", Definition: "Eine Erklärung", Language: "de"},
		{DomainID: uuid.New(), Word: "Teoría", Definition: "Una explicación", Language: "es"},
	})
	assert.True(t, domain.IsNotFound(err))

	got, err := domains.GetByID(ctx, science.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Vocabularies)

	require.NoError(t, vocab.CreateBatch(ctx, []*domain.Vocabulary{
		{DomainID: science.ID, Word: "Theory", Definition: "An explanation", Examples: []string{"Relativity"}},
		{DomainID: science.ID, Word: "Theorie", Definition: "Eine Erklärung", Language: "de"},
	}))

	list, err := domains.List(ctx, domain.ListDomainsOptions{IncludeVocabulary: true, Language: "de"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Technology", list[0].Name)
	assert.Empty(t, list[0].Vocabularies)
	require.Len(t, list[1].Vocabularies, 1)
	assert.Equal(t, "Theorie", list[1].Vocabularies[0].Word)

	stats, err := domains.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Domains)
	assert.Equal(t, int64(3), stats.Vocabulary)

	require.NoError(t, domains.Delete(ctx, tech.ID))
	_, err = vocab.GetByID(ctx, api.ID)
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(domains.Delete(ctx, tech.ID)))

	n, err := vocab.DeleteByDomainIDs(ctx, []uuid.UUID{science.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = domains.DeleteByIDs(ctx, []uuid.UUID{science.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDomainRepository_Purge(t *testing.T) {
	domains, vocab := openTestDB(t)
	ctx := context.Background()

	biz := &domain.Domain{Name: "Business"}
	require.NoError(t, domains.Create(ctx, biz))
	require.NoError(t, vocab.CreateBatch(ctx, []*domain.Vocabulary{
		{DomainID: biz.ID, Word: "ROI", Definition: "Return on investment"},
		{DomainID: biz.ID, Word: "KPI", Definition: "Key performance indicator"},
	}))

	n, removed, err := domains.Purge(ctx, []uuid.UUID{biz.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, int64(2), removed)

	stats, err := domains.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Domains)
	assert.Zero(t, stats.Vocabulary)
}
