package ports

import (
	"context"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (*model.TokenPair, *model.User, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
}
