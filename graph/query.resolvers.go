// Package graph provides GraphQL resolvers for the blog-api.
// This file contains the query resolvers.
package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/Timiemmy/Blog-Api-2/internal/auth"
	"github.com/Timiemmy/Blog-Api-2/internal/database"
)

// healthResolver reports service liveness.
type healthResolver struct{}

func (healthResolver) Status() string  { return "ok" }
func (healthResolver) Version() string { return "0.1.0" }

// Health returns the service health status.
func (r *Resolver) Health(ctx context.Context) (healthResolver, error) {
	return healthResolver{}, nil
}

// AllAccounts returns every account. No auth gate, no pagination.
func (r *Resolver) AllAccounts(ctx context.Context) ([]*accountResolver, error) {
	accounts, err := r.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*accountResolver, len(accounts))
	for i, a := range accounts {
		result[i] = &accountResolver{account: a, store: r.store}
	}
	return result, nil
}

// LoggedInUser returns the account bound to the caller's verified token.
func (r *Resolver) LoggedInUser(ctx context.Context) (*accountResolver, error) {
	authCtx, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	account, err := r.store.GetAccount(ctx, authCtx.UserID)
	if err != nil {
		return nil, err
	}
	return &accountResolver{account: account, store: r.store}, nil
}

// AllPosts returns every post. Requires an authenticated caller.
func (r *Resolver) AllPosts(ctx context.Context) ([]*postResolver, error) {
	if _, err := auth.RequireUser(ctx); err != nil {
		return nil, err
	}

	posts, err := r.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return wrapPosts(posts, r.store), nil
}

// Post returns a single post by ID. A missing post is an error, never null.
func (r *Resolver) Post(ctx context.Context, args struct{ PostID graphql.ID }) (*postResolver, error) {
	post, err := r.store.GetPost(ctx, string(args.PostID))
	if err != nil {
		return nil, err
	}
	return &postResolver{post: post, store: r.store}, nil
}

// FilterPosts returns a connection of posts whose title matches the supplied
// filter argument. With no filter argument the connection is unfiltered.
func (r *Resolver) FilterPosts(ctx context.Context, args struct {
	Title             *string
	Title_Icontains   *string
	Title_Istartswith *string
	First             *int32
	After             *string
}) (*postConnectionResolver, error) {
	filter := database.TitleFilter{
		Exact:       args.Title,
		IContains:   args.Title_Icontains,
		IStartsWith: args.Title_Istartswith,
	}

	offset := 0
	if args.After != nil {
		offset = decodeCursor(*args.After) + 1
	}

	limit := 0
	if args.First != nil && *args.First > 0 {
		limit = int(*args.First)
	}

	// Fetch one past the page to learn whether a next page exists.
	fetchLimit := 0
	if limit > 0 {
		fetchLimit = limit + 1
	}

	posts, err := r.store.FilterPosts(ctx, filter, fetchLimit, offset)
	if err != nil {
		return nil, err
	}

	hasNext := false
	if limit > 0 && len(posts) > limit {
		hasNext = true
		posts = posts[:limit]
	}

	total, err := r.store.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &postConnectionResolver{
		posts:      posts,
		store:      r.store,
		offset:     offset,
		hasNext:    hasNext,
		totalCount: total,
	}, nil
}
