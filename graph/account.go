package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/Timiemmy/Blog-Api-2/internal/database"
)

// accountResolver exposes an account row. The password hash has no resolver
// field and can never appear in a response.
type accountResolver struct {
	account *database.Account
	store   Store
}

func (r *accountResolver) ID() graphql.ID {
	return graphql.ID(r.account.ID)
}

func (r *accountResolver) Email() string {
	return r.account.Email
}

func (r *accountResolver) Username() string {
	return r.account.Username
}

// Posts resolves the account's posts by filtering on author equality.
func (r *accountResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := r.store.ListPostsByAuthor(ctx, r.account.ID)
	if err != nil {
		return nil, err
	}
	return wrapPosts(posts, r.store), nil
}

func (r *accountResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.account.CreatedAt}
}

func (r *accountResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.account.UpdatedAt}
}
