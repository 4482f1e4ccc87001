// Package graph provides GraphQL resolvers for the blog-api.
// This file contains the mutation resolvers.
package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/Timiemmy/Blog-Api-2/internal/auth"
	"github.com/Timiemmy/Blog-Api-2/internal/database"
)

// userInput mirrors the UserInput argument shape.
type userInput struct {
	ID       *graphql.ID
	Email    *string
	Username *string
	Password *string
}

// postInput mirrors the PostInput argument shape, shared by createPost and
// updatePost.
type postInput struct {
	ID     *graphql.ID
	Title  *string
	Body   *string
	Author *graphql.ID
}

// =============================================================================
// USER MUTATIONS
// =============================================================================

type createUserPayloadResolver struct {
	user *accountResolver
}

func (r *createUserPayloadResolver) User() *accountResolver { return r.user }

// CreateUser hashes the password and persists a new account. Duplicate
// username/email checks are left to the store and surface as its errors.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserData userInput }) (*createUserPayloadResolver, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(deref(args.UserData.Password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := r.store.CreateAccount(ctx, deref(args.UserData.Email), deref(args.UserData.Username), string(hash))
	if err != nil {
		return nil, err
	}
	return &createUserPayloadResolver{
		user: &accountResolver{account: account, store: r.store},
	}, nil
}

// =============================================================================
// POST MUTATIONS
// =============================================================================

type createPostPayloadResolver struct {
	post *postResolver
}

func (r *createPostPayloadResolver) Post() *postResolver { return r.post }

// CreatePost persists a new post. The author must already exist; a missing
// author propagates as a not-found error.
func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostData postInput }) (*createPostPayloadResolver, error) {
	author, err := r.store.GetAccount(ctx, derefID(args.PostData.Author))
	if err != nil {
		return nil, err
	}

	post, err := r.store.CreatePost(ctx, deref(args.PostData.Title), deref(args.PostData.Body), author.ID)
	if err != nil {
		return nil, err
	}
	return &createPostPayloadResolver{
		post: &postResolver{post: post, store: r.store},
	}, nil
}

type updatePostPayloadResolver struct {
	post *postResolver
}

func (r *updatePostPayloadResolver) Post() *postResolver { return r.post }

// UpdatePost overwrites title, body, and author of the identified post. A
// missing post yields a null payload rather than an error; a missing author
// remains a hard not-found failure.
func (r *Resolver) UpdatePost(ctx context.Context, args struct{ PostData postInput }) (*updatePostPayloadResolver, error) {
	if _, err := r.store.GetPost(ctx, derefID(args.PostData.ID)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &updatePostPayloadResolver{}, nil
		}
		return nil, err
	}

	author, err := r.store.GetAccount(ctx, derefID(args.PostData.Author))
	if err != nil {
		return nil, err
	}

	post, err := r.store.UpdatePost(ctx, derefID(args.PostData.ID), deref(args.PostData.Title), deref(args.PostData.Body), author.ID)
	if err != nil {
		return nil, err
	}
	return &updatePostPayloadResolver{
		post: &postResolver{post: post, store: r.store},
	}, nil
}

type deletePostPayloadResolver struct {
	post *postResolver
}

func (r *deletePostPayloadResolver) Post() *postResolver { return r.post }

// DeletePost removes the identified post and returns its prior data. A
// missing post propagates as a not-found error.
func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID *graphql.ID }) (*deletePostPayloadResolver, error) {
	post, err := r.store.DeletePost(ctx, derefID(args.ID))
	if err != nil {
		return nil, err
	}
	return &deletePostPayloadResolver{
		post: &postResolver{post: post, store: r.store},
	}, nil
}

// =============================================================================
// AUTH MUTATIONS
// =============================================================================

type tokenClaimsResolver struct {
	claims *auth.Claims
}

func (r *tokenClaimsResolver) Username() string { return r.claims.Username }
func (r *tokenClaimsResolver) Exp() int32       { return int32(r.claims.Exp) }
func (r *tokenClaimsResolver) OrigIat() int32   { return int32(r.claims.OrigIat) }

type tokenPayloadResolver struct {
	token            string
	claims           *auth.Claims
	refreshExpiresAt int64
}

func (r *tokenPayloadResolver) Token() string { return r.token }
func (r *tokenPayloadResolver) Payload() *tokenClaimsResolver {
	return &tokenClaimsResolver{claims: r.claims}
}
func (r *tokenPayloadResolver) RefreshExpiresIn() int32 { return int32(r.refreshExpiresAt) }

type verifyPayloadResolver struct {
	claims *auth.Claims
}

func (r *verifyPayloadResolver) Payload() *tokenClaimsResolver {
	return &tokenClaimsResolver{claims: r.claims}
}

// TokenAuth verifies credentials against the stored hash and issues a token
// bound to the matching account.
func (r *Resolver) TokenAuth(ctx context.Context, args struct{ Username, Password string }) (*tokenPayloadResolver, error) {
	account, err := r.store.GetAccountByUsername(ctx, args.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(args.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, claims, err := r.auth.Issue(account.ID, account.Username)
	if err != nil {
		return nil, err
	}
	return &tokenPayloadResolver{
		token:            token,
		claims:           claims,
		refreshExpiresAt: r.auth.RefreshExpiresAt(claims),
	}, nil
}

// VerifyToken validates a supplied token string and returns its claims.
func (r *Resolver) VerifyToken(ctx context.Context, args struct{ Token string }) (*verifyPayloadResolver, error) {
	claims, err := r.auth.Verify(args.Token)
	if err != nil {
		return nil, err
	}
	return &verifyPayloadResolver{claims: claims}, nil
}

// RefreshToken re-issues a token for a still-refreshable one.
func (r *Resolver) RefreshToken(ctx context.Context, args struct{ Token string }) (*tokenPayloadResolver, error) {
	token, claims, err := r.auth.Refresh(args.Token)
	if err != nil {
		return nil, err
	}
	return &tokenPayloadResolver{
		token:            token,
		claims:           claims,
		refreshExpiresAt: r.auth.RefreshExpiresAt(claims),
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func deref(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func derefID(id *graphql.ID) string {
	if id != nil {
		return string(*id)
	}
	return ""
}
