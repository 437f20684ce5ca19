package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"car-rental/internal/data/entity"
	"car-rental/pkg/kv"

	"go.uber.org/zap"
)

// UserRepository is the session store boundary for the single user record:
// one serialized snapshot under a fixed key. Save on login/register, Load at
// startup or per request, Clear on logout.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Load(ctx context.Context) (*entity.User, error)
	Clear(ctx context.Context) error
}

type userRepository struct {
	store kv.Store
	key   string
	log   *zap.Logger
}

func NewUserRepository(store kv.Store, key string, log *zap.Logger) UserRepository {
	return &userRepository{
		store: store,
		key:   key,
		log:   log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user snapshot: %w", err)
	}

	if err := r.store.Set(ctx, r.key, payload, 0); err != nil {
		r.log.Error("Failed to save user snapshot",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return fmt.Errorf("save user snapshot: %w", err)
	}

	return nil
}

func (r *userRepository) Load(ctx context.Context) (*entity.User, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.log.Error("Failed to load user snapshot", zap.Error(err))
		return nil, fmt.Errorf("load user snapshot: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user snapshot: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		r.log.Error("Failed to clear user snapshot", zap.Error(err))
		return fmt.Errorf("clear user snapshot: %w", err)
	}
	return nil
}
