package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     uuid.UUID `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
