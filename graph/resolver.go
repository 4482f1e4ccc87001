// Package graph provides GraphQL resolvers for the blog-api.
package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/Timiemmy/Blog-Api-2/internal/auth"
	"github.com/Timiemmy/Blog-Api-2/internal/database"
)

// Store is the persistence surface the resolvers depend on. *database.Client
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	CreateAccount(ctx context.Context, email, username, passwordHash string) (*database.Account, error)
	GetAccount(ctx context.Context, id string) (*database.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*database.Account, error)
	ListAccounts(ctx context.Context) ([]*database.Account, error)

	CreatePost(ctx context.Context, title, body, authorID string) (*database.Post, error)
	GetPost(ctx context.Context, id string) (*database.Post, error)
	ListPosts(ctx context.Context) ([]*database.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]*database.Post, error)
	UpdatePost(ctx context.Context, id, title, body, authorID string) (*database.Post, error)
	DeletePost(ctx context.Context, id string) (*database.Post, error)
	FilterPosts(ctx context.Context, filter database.TitleFilter, limit, offset int) ([]*database.Post, error)
	CountPosts(ctx context.Context, filter database.TitleFilter) (int, error)
}

// Resolver is the root resolver for GraphQL queries and mutations.
type Resolver struct {
	store Store
	auth  *auth.Provider
}

// NewResolver creates a new resolver with the given dependencies.
func NewResolver(store Store, provider *auth.Provider) *Resolver {
	return &Resolver{
		store: store,
		auth:  provider,
	}
}

// ParseSchema builds the executable schema around a resolver. The schema is
// constructed explicitly at startup and injected into the HTTP handler; there
// is no package-level schema state.
func ParseSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r)
}
