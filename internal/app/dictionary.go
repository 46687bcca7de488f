package app

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type DictionaryService struct {
	dictionary domain.Dictionary
	cache      domain.Cache
}

// NewDictionaryService wraps lookups with cache. cache may be nil.
func NewDictionaryService(dictionary domain.Dictionary, cache domain.Cache) *DictionaryService {
	return &DictionaryService{dictionary: dictionary, cache: cache}
}

func (s *DictionaryService) Lookup(ctx context.Context, word string) ([]domain.DictionaryEntry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError(map[string]string{
			"word": "Word is required",
		})
	}

	key := "dict:en:" + strings.ToLower(word)
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			log.Printf("[Dictionary] Cache read failed for %q: %v", word, err)
		} else if ok {
			var entries []domain.DictionaryEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.dictionary.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, key, data); err != nil {
				log.Printf("[Dictionary] Cache write failed for %q: %v", word, err)
			}
		}
	}
	return entries, nil
}
