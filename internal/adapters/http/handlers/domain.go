package handlers

import (
	"net/http"

	"github.com/willianpsouza/VocabularyPlatform/internal/adapters/http/response"
	"github.com/willianpsouza/VocabularyPlatform/internal/app"
	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

type DomainHandler struct {
	domainService *app.DomainService
}

func NewDomainHandler(domainService *app.DomainService) *DomainHandler {
	return &DomainHandler{domainService: domainService}
}

// List returns every domain with all of its vocabulary.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	domains, err := h.domainService.List(r.Context(), domain.ListDomainsOptions{IncludeVocabulary: true})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, domains)
}

func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateDomainInput
	if err := decodeJSON(w, r, &input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	d, err := h.domainService.Create(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, d)
}

func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		response.BadRequest(w, "Invalid domain ID")
		return
	}

	d, err := h.domainService.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, d)
}

func (h *DomainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		response.BadRequest(w, "Invalid domain ID")
		return
	}

	if err := h.domainService.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

func (h *DomainHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.domainService.Stats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, stats)
}
