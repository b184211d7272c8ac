package requestresponse

import (
	"time"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

// RegisterRequest : new account details
type RegisterRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
	Role     string `json:"role" example:"client"`
	Language string `json:"language" example:"ur"`
}

// UserData : account fields safe to return to clients
type UserData struct {
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserData(user *model.User) UserData {
	return UserData{
		UUID:      user.UUID,
		Email:     user.Email,
		Role:      string(user.Role),
		Language:  user.Language,
		CreatedAt: user.CreatedAt,
	}
}

// UserResponse : single account
type UserResponse struct {
	Success bool     `json:"success"`
	Data    UserData `json:"data"`
}

// RegisterResponse : created account plus its first token pair
type RegisterResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Tokens TokenData `json:"tokens"`
		User   UserData  `json:"user"`
	} `json:"data"`
}

// UpdateLanguageRequest : new preferred language, must be a supported code
type UpdateLanguageRequest struct {
	Language string `json:"language" example:"ar"`
}

// UpdatePasswordRequest : password change, current password required
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdatedResponse : generic mutation confirmation
type UpdatedResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Updated bool `json:"updated"`
	} `json:"data"`
}

// ListUsersResponse : admin listing with cursor pagination
type ListUsersResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Users      []UserData `json:"users"`
		NextCursor string     `json:"nextCursor,omitempty"`
	} `json:"data"`
}
