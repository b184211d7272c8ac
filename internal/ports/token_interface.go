package ports

import (
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

type TokenService interface {
	IssuePair(userUUID, email string, role model.Role) (*model.TokenPair, error)
	Verify(tokenStr string) (*security.Claims, error)
}
