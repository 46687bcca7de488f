package domain

import "context"

// Translator maps text between language tags. found is false when the
// translator had no entry, in which case the input text is returned as is.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (translated string, found bool, err error)
}

type TranslateInput struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

type TranslateResult struct {
	TranslatedText string `json:"translatedText"`
	Translated     bool   `json:"translated"`
}
