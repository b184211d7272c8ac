package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

// anonymousIdentity is the shared bucket for unauthenticated traffic on
// user-keyed endpoints.
const anonymousIdentity = "anonymous"

// KeyFunc derives the rate-limit key for a request. Keying is endpoint
// policy, not a limiter concern: auth endpoints key by IP (brute-force
// defense), per-user endpoints key by authenticated user id, sensitive
// operations key by both.
type KeyFunc func(r *http.Request) string

// ClientIP extracts the client address, preferring the proxy headers the
// edge sets (CF-Connecting-IP, then the first X-Forwarded-For hop) over
// RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func KeyByIP(scope string) KeyFunc {
	return func(r *http.Request) string {
		return fmt.Sprintf("ratelimit:%s:%s", scope, ClientIP(r))
	}
}

func KeyByUser(scope string) KeyFunc {
	return func(r *http.Request) string {
		return fmt.Sprintf("ratelimit:%s:%s", scope, userIdentity(r))
	}
}

func KeyByIPAndUser(scope string) KeyFunc {
	return func(r *http.Request) string {
		return fmt.Sprintf("ratelimit:%s:%s:%s", scope, ClientIP(r), userIdentity(r))
	}
}

func userIdentity(r *http.Request) string {
	if identity, ok := security.IdentityFromContext(r.Context()); ok {
		return identity.UserUUID
	}
	return anonymousIdentity
}
