package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/memory"
	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/translation"
	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, string, string) (string, bool, error) {
	return "", false, errors.New("translator down")
}

func setupVocabulary(t *testing.T, translator domain.Translator) (*app.VocabularyService, *app.DomainService, *domain.Domain) {
	t.Helper()
	store := memory.NewStore()
	domains := app.NewDomainService(store.Domains())
	d, err := domains.Create(context.Background(), domain.CreateDomainInput{Name: "Technology"})
	require.NoError(t, err)
	return app.NewVocabularyService(store.Vocabulary(), translator), domains, d
}

func TestVocabularyService_CreateDefaults(t *testing.T) {
	svc, _, d := setupVocabulary(t, nil)

	created, err := svc.Create(context.Background(), domain.CreateVocabularyInput{
		DomainID:   d.ID.String(),
		Word:       " Algorithm ",
		Definition: "A step-by-step procedure",
		Examples:   []string{" Sorting ", "", "  "},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	v := created[0]
	assert.NotEqual(t, uuid.Nil, v.ID)
	assert.Equal(t, "Algorithm", v.Word)
	assert.Equal(t, "en", v.Language)
	assert.Equal(t, []string{"Sorting"}, v.Examples)
	assert.Equal(t, d.ID, v.DomainID)
}

func TestVocabularyService_CreateWithoutExamples(t *testing.T) {
	svc, _, d := setupVocabulary(t, nil)

	created, err := svc.Create(context.Background(), domain.CreateVocabularyInput{
		DomainID: d.ID.String(), Word: "API", Definition: "Interface",
	})
	require.NoError(t, err)
	assert.NotNil(t, created[0].Examples)
	assert.Empty(t, created[0].Examples)
}

func TestVocabularyService_CreateValidation(t *testing.T) {
	svc, _, d := setupVocabulary(t, nil)

	tests := []struct {
		name  string
		input domain.CreateVocabularyInput
		field string
	}{
		{"missing domain", domain.CreateVocabularyInput{Word: "w", Definition: "d"}, "domainId"},
		{"malformed domain", domain.CreateVocabularyInput{DomainID: "abc", Word: "w", Definition: "d"}, "domainId"},
		{"missing word", domain.CreateVocabularyInput{DomainID: d.ID.String(), Definition: "d"}, "word"},
		{"missing definition", domain.CreateVocabularyInput{DomainID: d.ID.String(), Word: "w"}, "definition"},
		{"bad language", domain.CreateVocabularyInput{DomainID: d.ID.String(), Word: "w", Definition: "d", Language: "??"}, "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.(*domain.AppError).Details, tt.field)
		})
	}
}

func TestVocabularyService_CreateUnknownDomain(t *testing.T) {
	svc, _, _ := setupVocabulary(t, nil)

	_, err := svc.Create(context.Background(), domain.CreateVocabularyInput{
		DomainID: uuid.NewString(), Word: "w", Definition: "d",
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestVocabularyService_CreateDuplicateWord(t *testing.T) {
	ctx := context.Background()
	svc, _, d := setupVocabulary(t, nil)

	input := domain.CreateVocabularyInput{DomainID: d.ID.String(), Word: "Server", Definition: "d"}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	input.Word = "server"
	_, err = svc.Create(ctx, input)
	assert.True(t, domain.IsConflict(err))

	input.Language = "de"
	_, err = svc.Create(ctx, input)
	assert.NoError(t, err)
}

func TestVocabularyService_CreateBatchIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc, domains, d := setupVocabulary(t, nil)

	_, err := svc.CreateBatch(ctx, []domain.CreateVocabularyInput{
		{DomainID: d.ID.String(), Word: "Database", Definition: "Data store", Language: "en"},
		{DomainID: d.ID.String(), Word: "Datenbank", Definition: "Datenspeicher", Language: "de"},
		{DomainID: uuid.NewString(), Word: "Base de datos", Definition: "Almacén", Language: "es"},
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	got, err := domains.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Vocabularies)
}

func TestVocabularyService_CreateBatchReportsEntry(t *testing.T) {
	svc, _, d := setupVocabulary(t, nil)

	_, err := svc.CreateBatch(context.Background(), []domain.CreateVocabularyInput{
		{DomainID: d.ID.String(), Word: "Database", Definition: "Data store"},
		{DomainID: d.ID.String(), Word: "Datenbank", Language: "de"},
	})
	require.Error(t, err)
	assert.Contains(t, err.(*domain.AppError).Details, "translations[1].definition")
}

func TestVocabularyService_CreateBatchRejectsTranslateTo(t *testing.T) {
	ctx := context.Background()
	svc, domains, d := setupVocabulary(t, translation.NewStaticTranslator())

	_, err := svc.CreateBatch(ctx, []domain.CreateVocabularyInput{
		{DomainID: d.ID.String(), Word: "Database", Definition: "Data store", TranslateTo: []string{"de"}},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.(*domain.AppError).Details, "translations[0].translateTo")

	got, err := domains.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Vocabularies)
}

func TestVocabularyService_CreateBatchEmpty(t *testing.T) {
	svc, _, _ := setupVocabulary(t, nil)

	_, err := svc.CreateBatch(context.Background(), nil)
	assert.True(t, domain.IsValidation(err))
}

func TestVocabularyService_CreateTranslateTo(t *testing.T) {
	svc, _, d := setupVocabulary(t, translation.NewStaticTranslator())

	created, err := svc.Create(context.Background(), domain.CreateVocabularyInput{
		DomainID:    d.ID.String(),
		Word:        "Database",
		Definition:  "An organized collection of data",
		Examples:    []string{"Server"},
		TranslateTo: []string{"de", "es", "en", "DE"},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, "Database", created[0].Word)
	assert.Equal(t, "en", created[0].Language)

	assert.Equal(t, "de", created[1].Language)
	assert.Equal(t, "Datenbank", created[1].Word)
	assert.Equal(t, "An organized collection of data", created[1].Definition)
	assert.Equal(t, []string{"Server"}, created[1].Examples)

	assert.Equal(t, "es", created[2].Language)
	assert.Equal(t, "Base de datos", created[2].Word)
	assert.Equal(t, []string{"Servidor"}, created[2].Examples)
}

func TestVocabularyService_CreateTranslateToFails(t *testing.T) {
	ctx := context.Background()
	svc, domains, d := setupVocabulary(t, failingTranslator{})

	_, err := svc.Create(ctx, domain.CreateVocabularyInput{
		DomainID: d.ID.String(), Word: "Database", Definition: "d", TranslateTo: []string{"de"},
	})
	require.Error(t, err)

	got, err := domains.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Vocabularies)
}

func TestVocabularyService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, d := setupVocabulary(t, nil)

	created, err := svc.Create(ctx, domain.CreateVocabularyInput{DomainID: d.ID.String(), Word: "w", Definition: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created[0].ID))
	assert.True(t, domain.IsNotFound(svc.Delete(ctx, created[0].ID)))
}
