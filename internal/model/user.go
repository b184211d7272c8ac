package model

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a raw string onto a known role. Unknown values fall back to
// client, the least privileged role.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleLawyer:
		return RoleLawyer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleClient
	}
}

// IsAllowed reports whether role appears in the allow-set. Authorization is
// data-driven: there is no role inheritance, an admin must be listed
// explicitly to pass an admin gate.
func IsAllowed(role Role, allowed []Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Language     string    `db:"language" json:"language"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
