// Package database provides queries for post rows.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const postColumns = "id, title, body, author_id, created_at, updated_at"

// CreatePost inserts a new post bound to an existing account.
func (c *Client) CreatePost(ctx context.Context, title, body, authorID string) (*Post, error) {
	id := uuid.New().String()

	var p Post
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO posts (id, title, body, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+postColumns+`
	`, id, title, body, authorID).Scan(
		&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &p, nil
}

// GetPost retrieves a post by ID.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id)

	return scanPost(row, id)
}

// ListPosts retrieves all posts, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]*Post, error) {
	return c.queryPosts(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
	`)
}

// ListPostsByAuthor retrieves all posts authored by the given account.
func (c *Client) ListPostsByAuthor(ctx context.Context, authorID string) ([]*Post, error) {
	return c.queryPosts(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
	`, authorID)
}

// UpdatePost overwrites title, body, and author of an existing post.
func (c *Client) UpdatePost(ctx context.Context, id, title, body, authorID string) (*Post, error) {
	var p Post
	err := c.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = $2, body = $3, author_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING `+postColumns+`
	`, id, title, body, authorID).Scan(
		&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &p, nil
}

// DeletePost removes a post and returns its prior data.
func (c *Client) DeletePost(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := c.db.QueryRowContext(ctx, `
		DELETE FROM posts
		WHERE id = $1
		RETURNING `+postColumns+`
	`, id).Scan(
		&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}
	return &p, nil
}

// FilterPosts retrieves posts matching the title filter, oldest first for
// stable cursor ordering. A non-positive limit disables the LIMIT clause.
func (c *Client) FilterPosts(ctx context.Context, filter TitleFilter, limit, offset int) ([]*Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE 1=1
	`
	args := []any{}
	argIdx := 1

	query, args, argIdx = appendTitleFilter(query, args, argIdx, filter)

	query += " ORDER BY created_at"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
		argIdx++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, offset)
	}

	return c.queryPosts(ctx, query, args...)
}

// CountPosts reports how many posts match the title filter.
func (c *Client) CountPosts(ctx context.Context, filter TitleFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts
		WHERE 1=1
	`
	args := []any{}
	query, args, _ = appendTitleFilter(query, args, 1, filter)

	var count int
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// appendTitleFilter adds at most one title predicate, in filter precedence
// order: exact, icontains, istartswith.
func appendTitleFilter(query string, args []any, argIdx int, filter TitleFilter) (string, []any, int) {
	switch {
	case filter.Exact != nil:
		query += fmt.Sprintf(" AND title = $%d", argIdx)
		args = append(args, *filter.Exact)
		argIdx++
	case filter.IContains != nil:
		query += fmt.Sprintf(" AND title ILIKE $%d", argIdx)
		args = append(args, "%"+escapeLike(*filter.IContains)+"%")
		argIdx++
	case filter.IStartsWith != nil:
		query += fmt.Sprintf(" AND title ILIKE $%d", argIdx)
		args = append(args, escapeLike(*filter.IStartsWith)+"%")
		argIdx++
	}
	return query, args, argIdx
}

// escapeLike quotes LIKE metacharacters so filter arguments match literally.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

func (c *Client) queryPosts(ctx context.Context, query string, args ...any) ([]*Post, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func scanPost(row *sql.Row, id string) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}
