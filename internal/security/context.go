package security

import (
	"context"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/i18n"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

type contextKey string

const (
	identityContextKey contextKey = "identity"
	languageContextKey contextKey = "language"
)

// Identity is the request-scoped authenticated principal. It is created by
// the Authenticate middleware, consumed by downstream handlers, and
// discarded at request end; it is never persisted. Downstream code must read
// it from the context instead of re-parsing tokens.
type Identity struct {
	UserUUID  string
	Email     string
	Role      model.Role
	TokenKind string
	Language  string
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	return identity, ok && identity != nil
}

func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey, lang)
}

// LanguageFromContext returns the resolved request language. It is set for
// every request that passed the Authenticate middleware, identity or not;
// elsewhere it falls back to the default.
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageContextKey).(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}
