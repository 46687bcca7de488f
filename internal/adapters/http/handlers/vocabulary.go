package handlers

import (
	"net/http"
	"strings"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/middleware"
	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/response"
	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type VocabularyHandler struct {
	domainService *app.DomainService
	vocabService  *app.VocabularyService
}

func NewVocabularyHandler(domainService *app.DomainService, vocabService *app.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{domainService: domainService, vocabService: vocabService}
}

// List returns every domain carrying only the vocabulary of ?language=
// (default "en"). Domains without matching entries keep an empty list.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	language := strings.TrimSpace(r.URL.Query().Get("language"))
	if language == "" {
		language = domain.DefaultLanguage
	}

	domains, err := h.domainService.List(r.Context(), domain.ListDomainsOptions{
		IncludeVocabulary: true,
		Language:          language,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, domains)
}

// Create accepts a single entry, a single entry with translateTo, or a batch
// under "translations". A plain single entry is answered with the created
// row, the other forms with the list of created rows.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateVocabularyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if req.IsBatch() {
		if !req.CreateVocabularyInput.IsZero() {
			response.BadRequest(w, "Send either a single entry or translations, not both")
			return
		}
		created, err := h.vocabService.CreateBatch(r.Context(), req.Translations)
		if err != nil {
			response.Error(w, err)
			return
		}
		middleware.VocabularyCreated(created)
		response.OK(w, created)
		return
	}

	created, err := h.vocabService.Create(r.Context(), req.CreateVocabularyInput)
	if err != nil {
		response.Error(w, err)
		return
	}
	middleware.VocabularyCreated(created)
	if len(req.TranslateTo) == 0 {
		response.OK(w, created[0])
		return
	}
	response.OK(w, created)
}

func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		response.BadRequest(w, "Invalid vocabulary ID")
		return
	}

	v, err := h.vocabService.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, v)
}

func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		response.BadRequest(w, "Invalid vocabulary ID")
		return
	}

	if err := h.vocabService.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
