// Package database provides queries for account rows.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const accountColumns = "id, email, username, password_hash, created_at, updated_at"

// CreateAccount inserts a new account with an already-hashed password.
// Uniqueness violations surface as store-level errors, untranslated.
func (c *Client) CreateAccount(ctx context.Context, email, username, passwordHash string) (*Account, error) {
	id := uuid.New().String()

	var a Account
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO accounts (id, email, username, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+accountColumns+`
	`, id, email, username, passwordHash).Scan(
		&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &a, nil
}

// GetAccount retrieves an account by ID.
func (c *Client) GetAccount(ctx context.Context, id string) (*Account, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1
	`, id)

	return scanAccount(row, id)
}

// GetAccountByUsername retrieves an account by username.
func (c *Client) GetAccountByUsername(ctx context.Context, username string) (*Account, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE username = $1
	`, username)

	return scanAccount(row, username)
}

// ListAccounts retrieves all accounts, oldest first.
func (c *Client) ListAccounts(ctx context.Context) ([]*Account, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

func scanAccount(row *sql.Row, ref string) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %q: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}
