package domain

import "context"

// DictionaryEntry is one meaning returned by the word-definition lookup.
type DictionaryEntry struct {
	Word         string `json:"word"`
	Phonetic     string `json:"phonetic,omitempty"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Definition   string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

type Dictionary interface {
	Lookup(ctx context.Context, word string) ([]DictionaryEntry, error)
}

// Cache stores opaque values by key. Implementations return found=false on a
// miss and never treat a miss as an error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
