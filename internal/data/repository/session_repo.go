package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/kv"

	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

// sessionRepository keeps one TTL'd kv entry per token; expiry is enforced by
// the store so a stale token simply stops resolving.
type sessionRepository struct {
	store kv.Store
	log   *zap.Logger
}

func NewSessionRepository(store kv.Store, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		log:   log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := r.store.Set(ctx, sessionKey(session.Token.String()), payload, ttl); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.store.Get(ctx, sessionKey(token))
	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}

	return &session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, sessionKey(token)); err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return "session:" + token
}
