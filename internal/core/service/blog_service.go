package service

import (
	"context"
	"fmt"
	"time"

	"github.com/martijn/bloglist/internal/core/domain"
	"github.com/martijn/bloglist/internal/core/repository"
)

type BlogService struct {
	blogRepo repository.BlogRepository
	userRepo repository.UserRepository
}

func NewBlogService(blogRepo repository.BlogRepository, userRepo repository.UserRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

// CreateBlogInput carries the creatable blog fields. Likes is a pointer so an
// omitted value can be told apart from an explicit zero.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// UpdateBlogInput carries a partial update; only non-nil fields are applied.
type UpdateBlogInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// List returns all blogs with their owner populated.
func (s *BlogService) List(ctx context.Context) ([]*domain.Blog, error) {
	return s.blogRepo.List(ctx)
}

// Get returns a single blog with its owner populated.
func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("blog not found: %s", id))
	}
	return blog, nil
}

// Create validates the payload, assigns ownership to the authenticated user
// and persists the blog together with the owner's back-reference.
func (s *BlogService) Create(ctx context.Context, input CreateBlogInput, claims *TokenClaims) (*domain.Blog, error) {
	if claims == nil {
		return nil, NewUnauthorizedError("authentication required")
	}

	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, NewUnauthorizedError("unknown user")
	}

	likes := 0
	if input.Likes != nil {
		likes = *input.Likes
	}

	blog := domain.NewBlog(input.Title, input.Author, input.URL, likes, user.ID)
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	blog.Owner = user
	return blog, nil
}

// Update applies the non-nil fields of input to the blog. No authentication
// or ownership check is performed here on purpose: the source behavior allows
// anyone to update likes while delete stays owner-only.
func (s *BlogService) Update(ctx context.Context, id string, input UpdateBlogInput) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("blog not found: %s", id))
	}

	if input.Likes != nil && *input.Likes < 0 {
		return nil, NewValidationError("likes must not be negative")
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.URL != nil {
		blog.URL = *input.URL
	}
	if input.Likes != nil {
		blog.Likes = *input.Likes
	}
	blog.UpdatedAt = time.Now()

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	return blog, nil
}

// Delete removes a blog owned by the authenticated user along with the
// owner's back-reference to it.
func (s *BlogService) Delete(ctx context.Context, id string, claims *TokenClaims) error {
	if claims == nil {
		return NewUnauthorizedError("authentication required")
	}

	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return NewNotFoundError(fmt.Sprintf("blog not found: %s", id))
	}

	if blog.UserID != claims.UserID {
		return NewForbiddenError("blog belongs to another user")
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	return nil
}

func validateBlogInput(input CreateBlogInput) error {
	if input.Title == "" {
		return NewValidationError("title is required")
	}
	if input.URL == "" {
		return NewValidationError("url is required")
	}
	if input.Likes != nil && *input.Likes < 0 {
		return NewValidationError("likes must not be negative")
	}
	return nil
}
