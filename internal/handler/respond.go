package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/apperror"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/i18n"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/repository"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/service"
)

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// requestLanguage prefers the language resolved by the Authenticate
// middleware (which honors the stored preference) and falls back to the
// Accept-Language header on unauthenticated routes.
func requestLanguage(r *http.Request) string {
	if identity, ok := security.IdentityFromContext(r.Context()); ok {
		return identity.Language
	}
	return i18n.Resolve(r.Header.Get("Accept-Language"))
}

// mapServiceError translates service failures into catalog entries. Anything
// unrecognized becomes INTERNAL_ERROR without leaking the internal message.
func mapServiceError(err error, lang string) *apperror.AppError {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return apperror.NewValidation(lang, validationErr.Details)
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperror.New(apperror.CodeUnauthorized, lang)
	case errors.Is(err, service.ErrWrongTokenKind):
		return apperror.New(apperror.CodeUnauthorized, lang)
	case errors.Is(err, service.ErrEmailTaken):
		return apperror.New(apperror.CodeConflict, lang)
	case errors.Is(err, service.ErrAccessDenied):
		return apperror.New(apperror.CodeForbidden, lang)
	case errors.Is(err, repository.ErrUserNotFound):
		return apperror.New(apperror.CodeNotFound, lang)
	case errors.Is(err, security.ErrTokenExpired):
		return apperror.New(apperror.CodeTokenExpired, lang)
	case errors.Is(err, security.ErrTokenInvalid), errors.Is(err, security.ErrTokenMalformed):
		return apperror.New(apperror.CodeInvalidToken, lang)
	default:
		log.Printf("unhandled service error: %v", err)
		return apperror.New(apperror.CodeInternalError, lang)
	}
}
