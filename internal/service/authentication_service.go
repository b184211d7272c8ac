package service

import (
	"context"
	"fmt"
	"log"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/util"
)

type AuthenticationService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	tokenService ports.TokenService,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

// Login verifies the credentials and issues a fresh access+refresh pair.
// A record still on the legacy hash format, or below the current iteration
// floor, is opportunistically re-hashed here; a failed re-hash is logged
// and the login still succeeds.
func (s *AuthenticationService) Login(ctx context.Context, email, password string) (*model.TokenPair, *model.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("login failed for %s: %v", email, err)
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	if security.NeedsRehash(user.PasswordHash) {
		s.rehashPassword(ctx, user, password)
	}

	tokens, err := s.tokenService.IssuePair(user.UUID, user.Email, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	return tokens, user, nil
}

// Refresh exchanges a valid refresh token for a new pair. An access token
// presented here is rejected: token kind is endpoint policy, enforced by
// the caller of Verify.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := s.tokenService.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Kind != security.KindRefresh {
		return nil, ErrWrongTokenKind
	}

	// Re-read the account so a role change takes effect at refresh time.
	user, err := s.userRepository.FindByUUID(ctx, claims.UserUUID)
	if err != nil {
		log.Printf("refresh failed for %s: %v", claims.UserUUID, err)
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.tokenService.IssuePair(user.UUID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	return tokens, nil
}

func (s *AuthenticationService) rehashPassword(ctx context.Context, user *model.User, password string) {
	newHash, err := security.HashPassword(password)
	if err != nil {
		_ = util.LogError("opportunistic re-hash failed", err)
		return
	}
	if err := s.userRepository.UpdatePassword(ctx, user.UUID, newHash); err != nil {
		_ = util.LogError("failed to persist re-hashed password", err)
		return
	}
	user.PasswordHash = newHash
}
