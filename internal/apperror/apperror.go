package apperror

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// AppError is a localized, HTTP-mappable error. The message is resolved at
// construction time, so by the time an AppError reaches a response writer no
// further language decisions are needed.
type AppError struct {
	Code    Code                `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`

	status int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) HTTPStatus() int {
	return e.status
}

func New(code Code, lang string) *AppError {
	return &AppError{
		Code:    code,
		Message: Message(code, lang),
		status:  code.HTTPStatus(),
	}
}

// NewValidation builds a VALIDATION_ERROR carrying a field -> messages map.
// Only validation errors carry details; other codes keep the envelope flat.
func NewValidation(lang string, details map[string][]string) *AppError {
	appErr := New(CodeValidationError, lang)
	appErr.Details = details
	return appErr
}

// WithMessage replaces the catalog message, e.g. to embed an allowed-roles
// list into a FORBIDDEN response.
func (e *AppError) WithMessage(message string) *AppError {
	e.Message = message
	return e
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// WriteJSON serializes the error as the platform-wide failure envelope:
// {"success": false, "error": {"code", "message", "details"?}}.
func WriteJSON(w http.ResponseWriter, appErr *AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.status)

	if err := json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: appErr}); err != nil {
		log.Printf("failed to encode error response: %v", err)
	}
}
