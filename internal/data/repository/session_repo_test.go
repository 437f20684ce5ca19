package repository

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/kv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := NewSessionRepository(kv.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "user-1", found.UserID)

	require.NoError(t, repo.Revoke(ctx, session.Token.String()))

	found, err = repo.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepository_UnknownToken(t *testing.T) {
	repo := NewSessionRepository(kv.NewMemoryStore(), zap.NewNop())

	found, err := repo.FindValidSession(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepository_ExpiredSessionIsInvalid(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewSessionRepository(store, zap.NewNop())
	ctx := context.Background()

	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(30 * time.Millisecond),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	time.Sleep(60 * time.Millisecond)

	found, err := repo.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_SnapshotLifecycle(t *testing.T) {
	repo := NewUserRepository(kv.NewMemoryStore(), "rental:user", zap.NewNop())
	ctx := context.Background()

	// Empty store reads as the anonymous state
	user, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	saved := &entity.User{
		ID:        "user-1",
		Name:      "Alex",
		Email:     "alex@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, saved))

	user, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alex@example.com", user.Email)

	// A later save overwrites; there is only one snapshot slot
	require.NoError(t, repo.Save(ctx, &entity.User{ID: "user-2", Email: "b@example.com"}))
	user, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-2", user.ID)

	require.NoError(t, repo.Clear(ctx))
	user, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
