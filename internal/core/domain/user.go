package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           string    `db:"id"` // UUID
	Username     string    `db:"username"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"` // bcrypt hashed, never serialized
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	// Blogs holds the ids of the blogs this user owns, in creation order.
	// Denormalized back-reference; Blog.UserID is the source of truth.
	Blogs []string `db:"-"`
}

func NewUser(username, name, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
