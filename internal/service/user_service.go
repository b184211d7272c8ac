package service

import (
	"context"
	"fmt"
	"regexp"
	"unicode"

	"github.com/google/uuid"

	"github.com/ahmedzein1234/legaldocs-sub005/internal/i18n"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/ports"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
}

func NewUserService(
	userRepository ports.UserRepository,
	tokenService ports.TokenService,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

// Register creates an account and logs it in, returning the stored user and
// a token pair. Only client and lawyer accounts can self-register; admin is
// assigned out of band.
func (s *UserService) Register(ctx context.Context, email, password, role, language string) (*model.User, *model.TokenPair, error) {
	details := map[string][]string{}

	if email == "" {
		details["email"] = append(details["email"], "email is required")
	} else if !emailPattern.MatchString(email) {
		details["email"] = append(details["email"], "email is not valid")
	}

	details = validatePassword(password, details)

	if role != "" && model.ParseRole(role) == model.RoleAdmin {
		details["role"] = append(details["role"], "role is not allowed")
	}

	if len(details) > 0 {
		return nil, nil, &ValidationError{Details: details}
	}

	exists, err := s.userRepository.EmailExists(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailTaken
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.ParseRole(role),
		Language:     i18n.Normalize(language),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.tokenService.IssuePair(created.UUID, created.Email, created.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue token pair: %w", err)
	}

	return created, tokens, nil
}

// GetUser returns an account. Non-admins can only read themselves.
func (s *UserService) GetUser(ctx context.Context, userUUID string) (*model.User, error) {
	identity, ok := security.IdentityFromContext(ctx)
	if !ok {
		return nil, ErrAccessDenied
	}

	if identity.Role != model.RoleAdmin && identity.UserUUID != userUUID {
		return nil, ErrAccessDenied
	}

	return s.userRepository.FindByUUID(ctx, userUUID)
}

// UpdateLanguage stores a new language preference for the caller's own
// account.
func (s *UserService) UpdateLanguage(ctx context.Context, userUUID, language string) error {
	identity, ok := security.IdentityFromContext(ctx)
	if !ok || identity.UserUUID != userUUID {
		return ErrAccessDenied
	}

	if !i18n.IsSupported(language) {
		return &ValidationError{Details: map[string][]string{
			"language": {"language is not supported"},
		}}
	}

	return s.userRepository.UpdateLanguage(ctx, userUUID, language)
}

// UpdatePassword replaces the caller's password record after verifying the
// current password.
func (s *UserService) UpdatePassword(ctx context.Context, userUUID, currentPassword, newPassword string) error {
	identity, ok := security.IdentityFromContext(ctx)
	if !ok || identity.UserUUID != userUUID {
		return ErrAccessDenied
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return err
	}

	if !security.CheckPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	if details := validatePassword(newPassword, map[string][]string{}); len(details) > 0 {
		return &ValidationError{Details: details}
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepository.UpdatePassword(ctx, userUUID, hash)
}

// ListUsers is the admin listing; the role gate sits in the router.
func (s *UserService) ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.userRepository.ListUsers(ctx, cursor, limit)
}

func validatePassword(password string, details map[string][]string) map[string][]string {
	if len(password) < 8 {
		details["password"] = append(details["password"], "password must be at least 8 characters")
		return details
	}

	var letters, digits int
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			letters++
		case unicode.IsDigit(c):
			digits++
		}
	}

	if letters == 0 {
		details["password"] = append(details["password"], "password must contain at least one letter")
	}
	if digits == 0 {
		details["password"] = append(details["password"], "password must contain at least one digit")
	}

	return details
}
