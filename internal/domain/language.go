package domain

import (
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

// NormalizeLanguage canonicalises a BCP 47 tag ("EN" -> "en", "es-mx" ->
// "es-MX"). An empty tag yields DefaultLanguage.
func NormalizeLanguage(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLanguage, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// BaseLanguage returns the primary subtag, "es-MX" -> "es".
func BaseLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return strings.ToLower(tag)
	}
	base, _ := t.Base()
	return base.String()
}
