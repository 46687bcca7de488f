package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/response"
	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type TranslateHandler struct {
	translationService *app.TranslationService
	dictionaryService  *app.DictionaryService
}

func NewTranslateHandler(translationService *app.TranslationService, dictionaryService *app.DictionaryService) *TranslateHandler {
	return &TranslateHandler{
		translationService: translationService,
		dictionaryService:  dictionaryService,
	}
}

// Translate always answers 200 for valid input. translatedText falls back to
// the input text and "translated" tells whether a translation was found.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var input domain.TranslateInput
	if err := decodeJSON(w, r, &input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.translationService.Translate(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, result)
}

func (h *TranslateHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	entries, err := h.dictionaryService.Lookup(r.Context(), chi.URLParam(r, "word"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, entries)
}
