// Package database provides database models for the blog-api.
package database

import (
	"time"
)

// Account represents a registered user row. PasswordHash never leaves the
// process; it is excluded from every read-facing representation.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Post represents an authored article row, bound to exactly one account.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TitleFilter selects posts by title. At most one field is honored, in
// declaration order: exact match, case-insensitive containment,
// case-insensitive prefix.
type TitleFilter struct {
	Exact       *string
	IContains   *string
	IStartsWith *string
}
