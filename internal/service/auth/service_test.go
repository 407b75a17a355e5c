package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
	"github.com/vetify/booking-api/pkg/auth"
	apperrors "github.com/vetify/booking-api/pkg/errors"
	"github.com/vetify/booking-api/pkg/security"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	jwtSvc := auth.NewJWTService("test-secret", "test-refresh-secret", 1, 24)
	return NewService(store.Users(), security.NewBcryptHasher(4), jwtSvc), store
}

func registerAlice(t *testing.T, svc *Service) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Phone:    "5551234",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)

	user := registerAlice(t, svc)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser, "registration never creates superusers")
	assert.NotEqual(t, "sup3rsecret", user.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Phone:    "5555678",
		Password: "anothersecret",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	registerAlice(t, svc)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &model.LoginRequest{Username: "alice", Password: "sup3rsecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "alice", tokens.User.Username)

	resolved, err := svc.UserFromToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tokens.User.ID, resolved.ID)
}

func TestLoginRejections(t *testing.T) {
	svc, store := newTestService(t)
	user := registerAlice(t, svc)
	ctx := context.Background()

	_, err := svc.Login(ctx, &model.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Username: "nobody", Password: "sup3rsecret"})
	assert.Error(t, err)

	_, toggleErr := store.Users().ToggleActive(ctx, user.ID)
	require.NoError(t, toggleErr)
	_, err = svc.Login(ctx, &model.LoginRequest{Username: "alice", Password: "sup3rsecret"})
	assert.Error(t, err, "deactivated accounts cannot log in")
}

func TestRefresh(t *testing.T) {
	svc, store := newTestService(t)
	user := registerAlice(t, svc)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &model.LoginRequest{Username: "alice", Password: "sup3rsecret"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.Error(t, err, "access tokens are not valid refresh tokens")

	_, toggleErr := store.Users().ToggleActive(ctx, user.ID)
	require.NoError(t, toggleErr)
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.Error(t, err, "deactivation invalidates refresh")
}
