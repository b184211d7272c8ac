package security

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/apperror"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/i18n"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

// TokenVerifier is the slice of TokenService the middleware needs.
type TokenVerifier interface {
	Verify(tokenStr string) (*Claims, error)
}

// LanguageLookup resolves a user's stored language preference. It is owned
// by the account-storage layer; the middleware treats every failure as
// "no preference" and falls back to the Accept-Language header.
type LanguageLookup interface {
	FindLanguageByUUID(ctx context.Context, userUUID string) (string, error)
}

// Authenticate returns the per-request authentication middleware.
//
// With mandatory=true a missing credential rejects the request; with
// mandatory=false the request proceeds without an identity, language still
// resolved from the Accept-Language header. A credential that is present
// but malformed, unverifiable, or of the wrong kind is rejected either way.
// Authentication failures are terminal: they are never retried and are
// returned immediately with a localized message.
func Authenticate(verifier TokenVerifier, languages LanguageLookup, mandatory bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(verifier, languages, mandatory, next))
	}
}

func handleAuthentication(verifier TokenVerifier, languages LanguageLookup, mandatory bool, next http.Handler) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		lang := i18n.Resolve(request.Header.Get("Accept-Language"))

		tokenStr, present, carrierOK := extractCredential(request)
		if !present {
			if mandatory {
				apperror.WriteJSON(writer, apperror.New(apperror.CodeUnauthorized, lang))
				return
			}
			req := request.WithContext(WithLanguage(request.Context(), lang))
			next.ServeHTTP(writer, req)
			return
		}
		if !carrierOK {
			apperror.WriteJSON(writer, apperror.New(apperror.CodeUnauthorized, lang))
			return
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				apperror.WriteJSON(writer, apperror.New(apperror.CodeTokenExpired, lang))
			case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenMalformed):
				apperror.WriteJSON(writer, apperror.New(apperror.CodeInvalidToken, lang))
			default:
				log.Printf("unexpected token verification failure: %v", err)
				apperror.WriteJSON(writer, apperror.New(apperror.CodeInternalError, lang))
			}
			return
		}

		// Only access tokens authorize API calls; a refresh token presented
		// here is rejected outright.
		if claims.Kind != KindAccess {
			apperror.WriteJSON(writer, apperror.New(apperror.CodeUnauthorized, lang).
				WithMessage(fmt.Sprintf("%s: invalid token type", apperror.Message(apperror.CodeUnauthorized, lang))))
			return
		}

		if stored, err := languages.FindLanguageByUUID(request.Context(), claims.UserUUID); err != nil {
			log.Printf("language preference lookup failed for %s: %v", claims.UserUUID, err)
		} else if stored != "" {
			lang = i18n.Normalize(stored)
		}

		identity := &Identity{
			UserUUID:  claims.UserUUID,
			Email:     claims.Email,
			Role:      model.ParseRole(claims.Role),
			TokenKind: claims.Kind,
			Language:  lang,
		}

		ctx := WithIdentity(request.Context(), identity)
		ctx = WithLanguage(ctx, lang)
		next.ServeHTTP(writer, request.WithContext(ctx))
	}
}

// extractCredential pulls the bearer token from the Authorization header,
// falling back to the access-token cookie for browser clients. Returns the
// token, whether any credential is present, and whether the carrier was
// well-formed.
func extractCredential(request *http.Request) (tokenStr string, present bool, carrierOK bool) {
	authorizationHeader := request.Header.Get("Authorization")
	if authorizationHeader != "" {
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			return "", true, false
		}
		tokenStr = strings.TrimPrefix(authorizationHeader, "Bearer ")
		if tokenStr == "" {
			return "", true, false
		}
		return tokenStr, true, true
	}

	if cookieToken, ok := TokenFromCookie(request, AccessTokenCookie); ok {
		if cookieToken == "" {
			return "", true, false
		}
		return cookieToken, true, true
	}

	return "", false, false
}

// RequireRole gates a route on a data-driven allow-set. It is a pure
// function over the context populated by Authenticate: absent identity is
// UNAUTHORIZED, an identity whose role is not listed is FORBIDDEN with the
// allowed roles embedded in the message.
func RequireRole(allowed ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			lang := LanguageFromContext(request.Context())

			identity, ok := IdentityFromContext(request.Context())
			if !ok {
				apperror.WriteJSON(writer, apperror.New(apperror.CodeUnauthorized, lang))
				return
			}

			if !model.IsAllowed(identity.Role, allowed) {
				names := make([]string, len(allowed))
				for i, role := range allowed {
					names[i] = string(role)
				}
				apperror.WriteJSON(writer, apperror.New(apperror.CodeForbidden, lang).
					WithMessage(fmt.Sprintf("%s (allowed roles: %s)",
						apperror.Message(apperror.CodeForbidden, lang), strings.Join(names, ", "))))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
