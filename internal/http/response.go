package http

import (
	"encoding/json"
	"net/http"

	"github.com/wolfeidau/records/internal/validation"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Detail string                  `json:"detail"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response with a human readable detail.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// WriteValidationError writes a 422 response listing every field error.
func WriteValidationError(w http.ResponseWriter, err *validation.Error) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Detail: "request validation failed",
		Errors: err.Errors,
	})
}
