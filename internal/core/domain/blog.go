package domain

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID        string    `db:"id"` // UUID
	Title     string    `db:"title"`
	Author    string    `db:"author"`
	URL       string    `db:"url"`
	Likes     int       `db:"likes"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Owner is populated by the repository on read; not stored on the blog row.
	Owner *User `db:"-"`
}

func NewBlog(title, author, url string, likes int, userID string) *Blog {
	now := time.Now()
	return &Blog{
		ID:        uuid.New().String(),
		Title:     title,
		Author:    author,
		URL:       url,
		Likes:     likes,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
