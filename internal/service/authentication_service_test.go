package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahmedzein1234/legaldocs-sub005/config"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/model"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/security"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/service"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if created, ok := args.Get(0).(*model.User); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindLanguageByUUID(ctx context.Context, uuid string) (string, error) {
	args := m.Called(ctx, uuid)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	args := m.Called(ctx, uuid, newPasswordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLanguage(ctx context.Context, uuid, language string) error {
	args := m.Called(ctx, uuid, language)
	return args.Error(0)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error) {
	args := m.Called(ctx, cursor, limit)
	if users, ok := args.Get(0).([]*model.User); ok {
		return users, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

// ===== HELPERS =====

func newTokenService(t *testing.T) *security.TokenService {
	t.Helper()
	return security.NewTokenService(&config.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenTTL:  "15m",
		RefreshTokenTTL: "168h",
	})
}

func hashedUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		UUID:         "u1",
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         model.RoleClient,
		Language:     "en",
	}
}

// ===== TESTS =====

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	user := hashedUser(t, "S3cure-pass")
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)

	svc := service.NewAuthenticationService(repo, newTokenService(t))

	tokens, loggedIn, err := svc.Login(context.Background(), "user@example.com", "S3cure-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "u1", loggedIn.UUID)

	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, assert.AnError)

	svc := service.NewAuthenticationService(repo, newTokenService(t))

	_, _, err := svc.Login(context.Background(), "missing@example.com", "S3cure-pass")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(hashedUser(t, "S3cure-pass"), nil)

	svc := service.NewAuthenticationService(repo, newTokenService(t))

	_, _, err := svc.Login(context.Background(), "user@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_LegacyHashUpgraded(t *testing.T) {
	sum := sha256.Sum256([]byte("old-pass1"))
	user := &model.User{
		UUID:         "u1",
		Email:        "user@example.com",
		PasswordHash: base64.StdEncoding.EncodeToString(sum[:]),
		Role:         model.RoleClient,
	}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)
	repo.On("UpdatePassword", mock.Anything, "u1", mock.MatchedBy(func(hash string) bool {
		return security.CheckPassword("old-pass1", hash) && !security.NeedsRehash(hash)
	})).Return(nil)

	svc := service.NewAuthenticationService(repo, newTokenService(t))

	tokens, _, err := svc.Login(context.Background(), "user@example.com", "old-pass1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	repo.AssertExpectations(t)
}

func TestLogin_RehashFailureStillSucceeds(t *testing.T) {
	sum := sha256.Sum256([]byte("old-pass1"))
	user := &model.User{
		UUID:         "u1",
		Email:        "user@example.com",
		PasswordHash: base64.StdEncoding.EncodeToString(sum[:]),
		Role:         model.RoleClient,
	}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)
	repo.On("UpdatePassword", mock.Anything, "u1", mock.Anything).Return(assert.AnError)

	svc := service.NewAuthenticationService(repo, newTokenService(t))

	tokens, _, err := svc.Login(context.Background(), "user@example.com", "old-pass1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefresh_Success(t *testing.T) {
	tokenSvc := newTokenService(t)
	pair, err := tokenSvc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	// The account was promoted since the pair was issued; the new pair must
	// carry the current role.
	promoted := &model.User{UUID: "u1", Email: "user@example.com", Role: model.RoleLawyer}
	repo := new(MockUserRepository)
	repo.On("FindByUUID", mock.Anything, "u1").Return(promoted, nil)

	svc := service.NewAuthenticationService(repo, tokenSvc)

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	claims, err := tokenSvc.Verify(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "lawyer", claims.Role)
	repo.AssertExpectations(t)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	tokenSvc := newTokenService(t)
	pair, err := tokenSvc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	svc := service.NewAuthenticationService(repo, tokenSvc)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrWrongTokenKind)
	repo.AssertNotCalled(t, "FindByUUID", mock.Anything, mock.Anything)
}

func TestRefresh_ExpiredTokenPassesThrough(t *testing.T) {
	expiredSvc := security.NewTokenService(&config.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenTTL:  "15m",
		RefreshTokenTTL: "-1s",
	})
	pair, err := expiredSvc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	svc := service.NewAuthenticationService(repo, expiredSvc)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestRefresh_DeletedAccount(t *testing.T) {
	tokenSvc := newTokenService(t)
	pair, err := tokenSvc.IssuePair("u1", "user@example.com", model.RoleClient)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByUUID", mock.Anything, "u1").Return(nil, assert.AnError)

	svc := service.NewAuthenticationService(repo, tokenSvc)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
