package graph

import (
	"context"
	"encoding/base64"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/Timiemmy/Blog-Api-2/internal/database"
)

// postResolver exposes a post row.
type postResolver struct {
	post  *database.Post
	store Store
}

func (r *postResolver) ID() graphql.ID {
	return graphql.ID(r.post.ID)
}

func (r *postResolver) Title() string {
	return r.post.Title
}

func (r *postResolver) Body() string {
	return r.post.Body
}

// Author dereferences the post's author account.
func (r *postResolver) Author(ctx context.Context) (*accountResolver, error) {
	account, err := r.store.GetAccount(ctx, r.post.AuthorID)
	if err != nil {
		return nil, err
	}
	return &accountResolver{account: account, store: r.store}, nil
}

func (r *postResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.post.CreatedAt}
}

func (r *postResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: r.post.UpdatedAt}
}

func wrapPosts(posts []*database.Post, store Store) []*postResolver {
	resolvers := make([]*postResolver, len(posts))
	for i, p := range posts {
		resolvers[i] = &postResolver{post: p, store: store}
	}
	return resolvers
}

// =============================================================================
// CONNECTION TYPES
// =============================================================================

// postConnectionResolver is the relay-shaped result of filterPosts. Cursors
// encode absolute offsets into the filtered ordering.
type postConnectionResolver struct {
	posts      []*database.Post
	store      Store
	offset     int
	hasNext    bool
	totalCount int
}

func (r *postConnectionResolver) Edges() []*postEdgeResolver {
	edges := make([]*postEdgeResolver, len(r.posts))
	for i, p := range r.posts {
		edges[i] = &postEdgeResolver{
			post:   &postResolver{post: p, store: r.store},
			cursor: encodeCursor(r.offset + i),
		}
	}
	return edges
}

func (r *postConnectionResolver) PageInfo() *pageInfoResolver {
	info := &pageInfoResolver{
		hasNextPage:     r.hasNext,
		hasPreviousPage: r.offset > 0,
	}
	if len(r.posts) > 0 {
		start := encodeCursor(r.offset)
		end := encodeCursor(r.offset + len(r.posts) - 1)
		info.startCursor = &start
		info.endCursor = &end
	}
	return info
}

func (r *postConnectionResolver) TotalCount() int32 {
	return int32(r.totalCount)
}

type postEdgeResolver struct {
	post   *postResolver
	cursor string
}

func (r *postEdgeResolver) Cursor() string {
	return r.cursor
}

func (r *postEdgeResolver) Node() *postResolver {
	return r.post
}

type pageInfoResolver struct {
	hasNextPage     bool
	hasPreviousPage bool
	startCursor     *string
	endCursor       *string
}

func (r *pageInfoResolver) HasNextPage() bool {
	return r.hasNextPage
}

func (r *pageInfoResolver) HasPreviousPage() bool {
	return r.hasPreviousPage
}

func (r *pageInfoResolver) StartCursor() *string {
	return r.startCursor
}

func (r *pageInfoResolver) EndCursor() *string {
	return r.endCursor
}

func encodeCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("cursor:%d", offset)))
}

// decodeCursor parses a cursor back into an offset. Malformed cursors decode
// to -1, which callers treat as the position before the first element.
func decodeCursor(cursor string) int {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return -1
	}
	var offset int
	if _, err := fmt.Sscanf(string(raw), "cursor:%d", &offset); err != nil || offset < 0 {
		return -1
	}
	return offset
}
