package ratelimit

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/apperror"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/i18n"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

// Class declares the (window, max, key) tuple for one endpoint class.
type Class struct {
	Name   string
	Window time.Duration
	Max    int
	Key    KeyFunc
}

// Middleware throttles requests against the class budget. On every call,
// allowed or not, it sets the X-RateLimit-{Limit,Remaining,Reset} headers
// clients use for backoff; rejections additionally carry Retry-After and
// the localized RATE_LIMITED envelope. A failing limiter backend lets the
// request through: availability over strict throttling.
func Middleware(limiter ports.Limiter, class Class) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			result, err := limiter.Check(request.Context(), class.Key(request), class.Window, class.Max)
			if err != nil {
				log.Printf("rate limit check failed for class %s: %v", class.Name, err)
				next.ServeHTTP(writer, request)
				return
			}

			writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(class.Max))
			writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			writer.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				retryAfter := int(time.Until(result.ResetAt).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				writer.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				lang := security.LanguageFromContext(request.Context())
				if lang == i18n.DefaultLanguage {
					lang = i18n.Resolve(request.Header.Get("Accept-Language"))
				}
				apperror.WriteJSON(writer, apperror.New(apperror.CodeRateLimited, lang))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
