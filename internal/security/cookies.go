package security

import (
	"net/http"
	"time"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetTokenCookies installs both tokens as httpOnly, secure, SameSite=None
// cookies for browser clients that cannot hold bearer tokens safely. Each
// cookie's max-age matches its token's TTL.
func SetTokenCookies(writer http.ResponseWriter, pair *model.TokenPair) {
	setTokenCookie(writer, AccessTokenCookie, pair.AccessToken, pair.AccessExpiresAt)
	setTokenCookie(writer, RefreshTokenCookie, pair.RefreshToken, pair.RefreshExpiresAt)
}

// ClearTokenCookies expires both token cookies, used on logout.
func ClearTokenCookies(writer http.ResponseWriter) {
	expireTokenCookie(writer, AccessTokenCookie)
	expireTokenCookie(writer, RefreshTokenCookie)
}

// TokenFromCookie reads a token cookie if present.
func TokenFromCookie(request *http.Request, name string) (string, bool) {
	cookie, err := request.Cookie(name)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func setTokenCookie(writer http.ResponseWriter, name, value string, expiresAt time.Time) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func expireTokenCookie(writer http.ResponseWriter, name string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
