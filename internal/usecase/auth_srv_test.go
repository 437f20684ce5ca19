package usecase

import (
	"context"
	"testing"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() (AuthService, *repository.Repository) {
	repo := newTestRepository()
	config := &utils.Config{
		Session: utils.SessionConfig{UserKey: "rental:user", TTLHours: 24},
	}
	return NewAuthService(repo, config, zap.NewNop()), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Name:            "Alex Morgan",
		Email:           "alex@example.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex Morgan", resp.Name)
	assert.Equal(t, "alex@example.com", resp.Email)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "/dashboard", resp.Redirect)

	// Snapshot persisted with a hashed password, never the plaintext
	stored, err := repo.User.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, resp.UserID, stored.ID)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	// The issued session resolves to the new user
	session, err := repo.Session.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, resp.UserID, session.UserID)
}

func TestRegister_PasswordConfirmMismatch(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:            "Alex Morgan",
		Email:           "alex@example.com",
		Password:        "secret123",
		PasswordConfirm: "different",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// No state was touched
	stored, err := repo.User.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestLogin_AnyCredentialsAuthenticate(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "visitor@example.com",
		Password: "whatever",
	})
	require.NoError(t, err)

	// The demo identity owns the seeded bookings; the display name is the
	// email local part.
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "visitor", resp.Name)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "/dashboard", resp.Redirect)

	stored, err := repo.User.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.ID)
}

func TestLogin_RegisteredEmailChecksPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:            "Alex Morgan",
		Email:           "alex@example.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "alex@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex Morgan", resp.Name)
	assert.NotEqual(t, "user-1", resp.UserID)
}

func TestLogin_ValidationRejectsEmptyFields(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "not-an-email",
		Password: "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email: "visitor@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLogout_ClearsSessionAndSnapshot(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "visitor@example.com",
		Password: "whatever",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	session, err := repo.Session.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	stored, err := repo.User.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestLogout_InvalidTokenFormat(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token format")
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "visitor@example.com",
		Password: "whatever",
	})
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", user.Email)

	// A stale session pointing at a different identity reads as absent
	_, err = svc.CurrentUser(ctx, "user-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
