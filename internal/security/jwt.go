package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ahmedzein1234/legaldocs-sub005/config"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/util"
)

const (
	// TokenIssuer and TokenAudience are fixed constants checked on every
	// verification, so a token signed for another service with the same
	// secret still fails here.
	TokenIssuer   = "legaldocs-platform"
	TokenAudience = "legaldocs-api"

	KindAccess  = "access"
	KindRefresh = "refresh"
)

var (
	// ErrTokenExpired: valid signature, past expiry. Callers should answer
	// "expired, please refresh" rather than reject outright.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid: bad signature, wrong issuer/audience/algorithm, or
	// missing required claims.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenMalformed: not parseable as a token at all.
	ErrTokenMalformed = errors.New("malformed token")
)

type Claims struct {
	UserUUID string `json:"user_uuid"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Kind     string `json:"kind"`
	jwt.RegisteredClaims
}

type TokenService struct {
	*config.JWTConfig
}

func NewTokenService(cfg *config.JWTConfig) *TokenService {
	return &TokenService{cfg}
}

// IssuePair produces two independently signed tokens from the same subject
// claims: one kind=access (short-lived), one kind=refresh (long-lived). The
// tokens are not derived from each other.
func (service *TokenService) IssuePair(userUUID, email string, role model.Role) (*model.TokenPair, error) {
	accessTTL, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("failed to parse access token TTL", err)
	}

	refreshTTL, err := time.ParseDuration(service.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("failed to parse refresh token TTL", err)
	}

	now := time.Now()
	accessExpiresAt := now.Add(accessTTL)
	refreshExpiresAt := now.Add(refreshTTL)

	accessToken, err := service.sign(userUUID, email, role, KindAccess, now, accessExpiresAt)
	if err != nil {
		return nil, util.LogError("failed to sign access token", err)
	}

	refreshToken, err := service.sign(userUUID, email, role, KindRefresh, now, refreshExpiresAt)
	if err != nil {
		return nil, util.LogError("failed to sign refresh token", err)
	}

	return &model.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (service *TokenService) sign(userUUID, email string, role model.Role, kind string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserUUID: userUUID,
		Email:    email,
		Role:     string(role),
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Audience:  jwt.ClaimStrings{TokenAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jwtToken.SignedString([]byte(service.SecretKey))
}

// Verify validates signature, expiry, issuer, and audience, and returns the
// claims. Expiry is checked with zero leeway: clock skew between instances
// is treated as a deployment problem, not compensated for here. Verify does
// not enforce the token kind; that is endpoint policy and belongs to the
// caller.
func (service *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(service.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)

	switch {
	case err == nil && jwtToken.Valid:
		// signature and registered claims are good; check ours below
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}

	if claims.UserUUID == "" || claims.Kind == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
