package apperror_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/apperror"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code apperror.Code
		want int
	}{
		{apperror.CodeUnauthorized, http.StatusUnauthorized},
		{apperror.CodeForbidden, http.StatusForbidden},
		{apperror.CodeNotFound, http.StatusNotFound},
		{apperror.CodeValidationError, http.StatusUnprocessableEntity},
		{apperror.CodeConflict, http.StatusConflict},
		{apperror.CodeRateLimited, http.StatusTooManyRequests},
		{apperror.CodeInternalError, http.StatusInternalServerError},
		{apperror.CodeTokenExpired, http.StatusUnauthorized},
		{apperror.CodeInvalidToken, http.StatusUnauthorized},
		{apperror.CodeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}

	// A code outside the closed set must never report success.
	assert.Equal(t, http.StatusInternalServerError, apperror.Code("MADE_UP").HTTPStatus())
}

func TestMessage_Localization(t *testing.T) {
	en := apperror.Message(apperror.CodeRateLimited, "en")
	ur := apperror.Message(apperror.CodeRateLimited, "ur")
	ar := apperror.Message(apperror.CodeRateLimited, "ar")

	assert.NotEmpty(t, en)
	assert.NotEmpty(t, ur)
	assert.NotEmpty(t, ar)
	assert.NotEqual(t, en, ur)
	assert.NotEqual(t, en, ar)
}

func TestMessage_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t,
		apperror.Message(apperror.CodeUnauthorized, "en"),
		apperror.Message(apperror.CodeUnauthorized, "fr"))
}

func TestMessage_UnknownCodeReturnsRawCode(t *testing.T) {
	assert.Equal(t, "MADE_UP", apperror.Message(apperror.Code("MADE_UP"), "en"))
}

func TestEveryCodeHasAllLanguages(t *testing.T) {
	codes := []apperror.Code{
		apperror.CodeUnauthorized, apperror.CodeForbidden, apperror.CodeNotFound,
		apperror.CodeValidationError, apperror.CodeConflict, apperror.CodeRateLimited,
		apperror.CodeInternalError, apperror.CodeTokenExpired, apperror.CodeInvalidToken,
		apperror.CodeBadRequest,
	}

	for _, code := range codes {
		for _, lang := range []string{"en", "ur", "ar"} {
			assert.NotEmpty(t, apperror.Message(code, lang), "%s/%s", code, lang)
			assert.NotEqual(t, string(code), apperror.Message(code, lang), "%s/%s", code, lang)
		}
	}
}

func TestWriteJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	apperror.WriteJSON(rec, apperror.New(apperror.CodeNotFound, "en"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string              `json:"code"`
			Message string              `json:"message"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Resource not found", env.Error.Message)
	assert.Nil(t, env.Error.Details)
}

func TestWriteJSON_ValidationDetails(t *testing.T) {
	details := map[string][]string{
		"email":    {"email is required"},
		"password": {"password must be at least 8 characters"},
	}

	rec := httptest.NewRecorder()
	apperror.WriteJSON(rec, apperror.NewValidation("ur", details))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var env struct {
		Error struct {
			Code    string              `json:"code"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, details, env.Error.Details)
}

func TestWithMessage(t *testing.T) {
	appErr := apperror.New(apperror.CodeForbidden, "en").WithMessage("Access denied (allowed roles: admin)")

	assert.Equal(t, "Access denied (allowed roles: admin)", appErr.Message)
	// The status stays bound to the code.
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus())
}
