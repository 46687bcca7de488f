package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type countingDictionary struct {
	calls   int
	entries []domain.DictionaryEntry
	err     error
}

func (d *countingDictionary) Lookup(_ context.Context, word string) ([]domain.DictionaryEntry, error) {
	d.calls++
	return d.entries, d.err
}

type mapCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	failGet bool
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return nil, false, errors.New("cache down")
	}
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func TestDictionaryService_CachesLookups(t *testing.T) {
	ctx := context.Background()
	dict := &countingDictionary{entries: []domain.DictionaryEntry{
		{Word: "server", PartOfSpeech: "noun", Definition: "A computer that serves"},
	}}
	cache := &mapCache{values: map[string][]byte{}}
	svc := app.NewDictionaryService(dict, cache)

	first, err := svc.Lookup(ctx, "Server")
	require.NoError(t, err)
	second, err := svc.Lookup(ctx, "server ")
	require.NoError(t, err)

	assert.Equal(t, 1, dict.calls)
	assert.Equal(t, first, second)
	assert.Contains(t, cache.values, "dict:en:server")
}

func TestDictionaryService_CacheFailureFallsThrough(t *testing.T) {
	dict := &countingDictionary{entries: []domain.DictionaryEntry{{Word: "data", Definition: "Facts"}}}
	svc := app.NewDictionaryService(dict, &mapCache{values: map[string][]byte{}, failGet: true})

	entries, err := svc.Lookup(context.Background(), "data")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, dict.calls)
}

func TestDictionaryService_WithoutCache(t *testing.T) {
	dict := &countingDictionary{err: domain.NewNotFoundError("Word")}
	svc := app.NewDictionaryService(dict, nil)

	_, err := svc.Lookup(context.Background(), "qwzx")
	assert.True(t, domain.IsNotFound(err))

	_, err = svc.Lookup(context.Background(), "  ")
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 1, dict.calls)
}
