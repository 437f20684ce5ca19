package entity

import (
	"time"
)

// User is the single session identity. PasswordHash is kept inside the
// snapshot so a re-login with the same email verifies against it; it never
// leaves the kv store.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
