package model

import "time"

// TokenPair contains the access and refresh tokens issued together at login.
// The two tokens are signed independently and are not derived from each
// other; either may outlive a restart of the issuing instance.
// swagger:model
type TokenPair struct {
	// Access token (JWT, short-lived)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh token (JWT, long-lived, exchanged for a new pair)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`

	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"-"`
}
