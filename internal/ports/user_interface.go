package ports

import (
	"context"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindLanguageByUUID(ctx context.Context, uuid string) (string, error)
	UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error
	UpdateLanguage(ctx context.Context, uuid, language string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error)
}

type UserService interface {
	Register(ctx context.Context, email, password, role, language string) (*model.User, *model.TokenPair, error)
	GetUser(ctx context.Context, uuid string) (*model.User, error)
	UpdateLanguage(ctx context.Context, uuid, language string) error
	UpdatePassword(ctx context.Context, uuid, currentPassword, newPassword string) error
	ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error)
}
