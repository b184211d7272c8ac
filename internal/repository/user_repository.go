package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ahmedzein1234/legaldocs-sub005/config"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/util"
)

// ErrUserNotFound is returned when a lookup matches no account.
var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : persists a new account and returns the stored row
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, password_hash, role, language)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, email, role, language, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.UUID, user.Email, user.PasswordHash, user.Role, user.Language).
		Scan(&createdUser.UUID, &createdUser.Email, &createdUser.Role, &createdUser.Language, &createdUser.CreatedAt)

	if err != nil {
		return nil, util.LogError("[UserRepo] failed to insert user", err)
	}

	return createdUser, nil
}

// FindByUUID : looks up an account by UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, role, language, created_at FROM users WHERE uuid = $1`
	var user model.User
	err := r.DB.GetContext(ctx, &user, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] failed to find user by uuid", err)
	}
	return &user, nil
}

// FindByEmail : looks up an account by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, email, password_hash, role, language, created_at FROM users WHERE email = $1`
	var user model.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] failed to find user by email", err)
	}
	return &user, nil
}

// FindLanguageByUUID : reads only the stored language preference. Used on
// every authenticated request, so it stays a single-column read.
func (r *UserRepository) FindLanguageByUUID(ctx context.Context, uuid string) (string, error) {
	query := `SELECT language FROM users WHERE uuid = $1`
	var language string
	err := r.DB.GetContext(ctx, &language, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", util.LogError("[UserRepo] failed to read language preference", err)
	}
	return language, nil
}

// UpdatePassword : replaces the password record
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] failed to update password", err)
	}
	return nil
}

// UpdateLanguage : stores a new language preference
func (r *UserRepository) UpdateLanguage(ctx context.Context, uuid, language string) error {
	query := `UPDATE users SET language = $2 WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid, language)
	if err != nil {
		return util.LogError("[UserRepo] failed to update language preference", err)
	}
	return nil
}

// EmailExists : reports whether an account with this email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	err := r.DB.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, util.LogError("[UserRepo] failed to check email existence", err)
	}
	return exists, nil
}

// ListUsers : cursor-based listing for the admin surface
func (r *UserRepository) ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error) {
	query := `
        SELECT uuid, email, password_hash, role, language, created_at
        FROM users
        WHERE uuid > $1
        ORDER BY uuid ASC
        LIMIT $2
    `

	var users []*model.User
	err := r.DB.SelectContext(ctx, &users, query, cursor, limit+1) // +1 probes for a next page
	if err != nil {
		return nil, "", util.LogError("[UserRepo] failed to list users", err)
	}

	var nextCursor string
	if len(users) > limit {
		users = users[:limit]
		nextCursor = users[len(users)-1].UUID
	}

	return users, nextCursor, nil
}
