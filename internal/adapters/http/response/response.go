package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON writes data as the whole body. Successful responses carry the
// resource itself, without an envelope.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[ERROR] Failed to encode response: %v", err)
	}
}

// Error maps err onto a status code. Anything that is not an AppError is
// logged in full and reported to the client as a generic internal error.
func Error(w http.ResponseWriter, err error) {
	var status int
	var errorBody ErrorBody

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		errorBody = ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if status >= http.StatusInternalServerError {
			log.Printf("[ERROR] %v", err)
		}
	} else {
		log.Printf("[ERROR] Unexpected error: %v", err)
		status = http.StatusInternalServerError
		errorBody = ErrorBody{
			Code:    domain.CodeInternal,
			Message: "An unexpected error occurred",
		}
	}

	JSON(w, status, ErrorResponse{Error: errorBody})
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, domain.NewBadRequestError(message))
}
