package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/bloglist/internal/core/domain"
	"github.com/martijn/bloglist/internal/core/repository"
)

type blogRepository struct {
	db *DB
}

func NewBlogRepository(db *DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts the blog and appends its id to the owner's blog list in one
// transaction. The back-reference insert is INSERT OR IGNORE on a composite
// primary key, an atomic set-union that cannot lose concurrent appends.
func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blog (id, title, author, url, likes, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_blog (user_id, blog_id) VALUES (?, ?)`,
		blog.UserID, blog.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to append blog to user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit blog creation: %w", err)
	}
	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	query := selectWithOwner + ` WHERE b.id = ?`

	blog, err := r.scanBlog(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("blog not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find blog: %w", err)
	}
	return blog, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	query := `
		UPDATE blog
		SET title = ?, author = ?, url = ?, likes = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UpdatedAt,
		blog.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("blog not found: %s", blog.ID)
	}

	return nil
}

// Delete removes the blog and its back-reference row in one transaction. The
// user_blog foreign key also cascades, so a partial state cannot survive.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_blog WHERE blog_id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove blog from user: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM blog WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("blog not found: %s", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit blog deletion: %w", err)
	}
	return nil
}

func (r *blogRepository) List(ctx context.Context) ([]*domain.Blog, error) {
	query := selectWithOwner + ` ORDER BY b.rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []*domain.Blog
	for rows.Next() {
		blog, err := r.scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM blog`); err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return count, nil
}

// selectWithOwner joins the owning user so every read comes back with the
// owner identity populated.
const selectWithOwner = `
	SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id,
	       b.created_at, b.updated_at, u.username, u.name
	FROM blog b
	JOIN user u ON u.id = b.user_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *blogRepository) scanBlog(row rowScanner) (*domain.Blog, error) {
	var blog domain.Blog
	var username, name string
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.UserID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&username,
		&name,
	)
	if err != nil {
		return nil, err
	}

	blog.Owner = &domain.User{
		ID:       blog.UserID,
		Username: username,
		Name:     name,
	}
	return &blog, nil
}
