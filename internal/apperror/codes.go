package apperror

import "net/http"

// Code is the closed set of platform error kinds. Every code has a fixed
// HTTP status and a message in every supported language.
type Code string

const (
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"
	CodeConflict        Code = "CONFLICT"
	CodeRateLimited     Code = "RATE_LIMITED"
	CodeInternalError   Code = "INTERNAL_ERROR"
	CodeTokenExpired    Code = "TOKEN_EXPIRED"
	CodeInvalidToken    Code = "INVALID_TOKEN"
	CodeBadRequest      Code = "BAD_REQUEST"
)

var statusByCode = map[Code]int{
	CodeUnauthorized:    http.StatusUnauthorized,
	CodeForbidden:       http.StatusForbidden,
	CodeNotFound:        http.StatusNotFound,
	CodeValidationError: http.StatusUnprocessableEntity,
	CodeConflict:        http.StatusConflict,
	CodeRateLimited:     http.StatusTooManyRequests,
	CodeInternalError:   http.StatusInternalServerError,
	CodeTokenExpired:    http.StatusUnauthorized,
	CodeInvalidToken:    http.StatusUnauthorized,
	CodeBadRequest:      http.StatusBadRequest,
}

// HTTPStatus returns the fixed status for the code. Unknown codes map to 500
// so a miswired call site can never accidentally report success.
func (c Code) HTTPStatus() int {
	if status, ok := statusByCode[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
