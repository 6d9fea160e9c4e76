package repository

import (
	"context"

	"github.com/martijn/bloglist/internal/core/domain"
)

type BlogRepository interface {
	// Create persists the blog and appends its id to the owner's blog list
	// in a single transaction.
	Create(ctx context.Context, blog *domain.Blog) error
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) error
	// Delete removes the blog and its back-reference row in a single
	// transaction.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Blog, error)
	Count(ctx context.Context) (int, error)
}
