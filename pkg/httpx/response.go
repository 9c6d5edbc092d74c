package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope messages. Field-rule and decoding failures are "Failed data
// validation"; every other client error is "Request failed".
const (
	MessageRequestFailed    = "Request failed"
	MessageValidationFailed = "Failed data validation"
)

// ErrorBody is the inner object of the error envelope.
type ErrorBody struct {
	Message string            `json:"message" example:"Request failed"`
	Details string            `json:"details" example:"Object not found"`
	Fields  map[string]string `json:"fields,omitempty"`
} // @name ErrorBody

// ErrorResponse is the uniform error envelope: {"error": {"message", "details"}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
} // @name ErrorResponse

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the error envelope.
func JSONError(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, ErrorResponse{Error: ErrorBody{Message: message, Details: details}})
}

// JSONFieldErrors writes the error envelope with per-field messages.
func JSONFieldErrors(w http.ResponseWriter, status int, message, details string, fields map[string]string) {
	JSON(w, status, ErrorResponse{Error: ErrorBody{Message: message, Details: details, Fields: fields}})
}

// NoContent writes 204 with no body. List endpoints use it for empty results.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
