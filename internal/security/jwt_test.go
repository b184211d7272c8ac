package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedzein1234/legaldocs-sub005/config"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

func newTestTokenService(accessTTL, refreshTTL string) *security.TokenService {
	return security.NewTokenService(&config.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	})
}

func TestIssuePair_AccessClaims(t *testing.T) {
	svc := newTestTokenService("15m", "168h")

	pair, err := svc.IssuePair("u1", "user@example.com", model.RoleLawyer)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserUUID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "lawyer", claims.Role)
	assert.Equal(t, security.KindAccess, claims.Kind)
	assert.Equal(t, security.TokenIssuer, claims.Issuer)
}

func TestIssuePair_RefreshKindAndTTL(t *testing.T) {
	svc := newTestTokenService("15m", "168h")

	pair, err := svc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	claims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, security.KindRefresh, claims.Kind)

	assert.WithinDuration(t, time.Now().Add(15*time.Minute), pair.AccessExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), pair.RefreshExpiresAt, 5*time.Second)
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestTokenService("-1s", "168h")

	pair, err := svc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := newTestTokenService("15m", "168h")

	pair, err := svc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := newTestTokenService("15m", "168h")
	other := security.NewTokenService(&config.JWTConfig{
		SecretKey:       "other-secret",
		AccessTokenTTL:  "15m",
		RefreshTokenTTL: "168h",
	})

	pair, err := other.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	svc := newTestTokenService("15m", "168h")

	_, err := svc.Verify("definitely-not-a-token")
	assert.ErrorIs(t, err, security.ErrTokenMalformed)
}

func TestVerify_WrongIssuerOrAudience(t *testing.T) {
	makeToken := func(issuer, audience string) string {
		claims := security.Claims{
			UserUUID: "u1",
			Kind:     security.KindAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Audience:  jwt.ClaimStrings{audience},
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return signed
	}

	svc := newTestTokenService("15m", "168h")

	_, err := svc.Verify(makeToken("another-service", security.TokenAudience))
	assert.ErrorIs(t, err, security.ErrTokenInvalid)

	_, err = svc.Verify(makeToken(security.TokenIssuer, "another-audience"))
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestVerify_MissingRequiredClaims(t *testing.T) {
	claims := security.Claims{
		// no UserUUID, no Kind
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    security.TokenIssuer,
			Audience:  jwt.ClaimStrings{security.TokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := newTestTokenService("15m", "168h")
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}
