package requestresponse

import "time"

// LoginRequest : credentials for token issuance
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// RefreshRequest : body carrier for the refresh token; browser clients may
// send the refresh_token cookie instead
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// TokenData : issued pair plus the access expiry clients schedule refresh by
type TokenData struct {
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	AccessExpiresAt time.Time `json:"accessExpiresAt"`
}

// LoginResponse : successful authentication
type LoginResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Tokens TokenData `json:"tokens"`
		User   UserData  `json:"user"`
	} `json:"data"`
}

// RefreshResponse : new pair after a successful refresh
type RefreshResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Tokens TokenData `json:"tokens"`
	} `json:"data"`
}

// LogoutResponse : confirmation that the token cookies were cleared
type LogoutResponse struct {
	Success bool `json:"success"`
	Data    struct {
		LoggedOut bool `json:"loggedOut"`
	} `json:"data"`
}

// CurrentUserResponse : identity of the authenticated caller
type CurrentUserResponse struct {
	Success bool `json:"success"`
	Data    struct {
		UserUUID string `json:"user_uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Language string `json:"language"`
	} `json:"data"`
}
