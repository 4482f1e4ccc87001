// Package graph provides the GraphQL schema and resolvers for the blog-api.
package graph

// Schema is the GraphQL schema definition served by the blog-api. The
// title_Icontains / title_Istartswith argument names are part of the public
// contract and are kept verbatim.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type Query {
		allAccounts: [Account!]!
		loggedInUser: Account!
		allPosts: [Post!]!
		post(postId: ID!): Post!
		filterPosts(title: String, title_Icontains: String, title_Istartswith: String, first: Int, after: String): PostConnection!
		health: Health!
	}

	type Mutation {
		createUser(userData: UserInput!): CreateUserPayload!
		createPost(postData: PostInput!): CreatePostPayload!
		updatePost(postData: PostInput!): UpdatePostPayload!
		deletePost(id: ID): DeletePostPayload!
		tokenAuth(username: String!, password: String!): TokenPayload!
		verifyToken(token: String!): VerifyPayload!
		refreshToken(token: String!): TokenPayload!
	}

	type Account {
		id: ID!
		email: String!
		username: String!
		posts: [Post!]!
		createdAt: Time!
		updatedAt: Time!
	}

	type Post {
		id: ID!
		title: String!
		body: String!
		author: Account!
		createdAt: Time!
		updatedAt: Time!
	}

	type PostConnection {
		edges: [PostEdge!]!
		pageInfo: PageInfo!
		totalCount: Int!
	}

	type PostEdge {
		cursor: String!
		node: Post!
	}

	type PageInfo {
		hasNextPage: Boolean!
		hasPreviousPage: Boolean!
		startCursor: String
		endCursor: String
	}

	type Health {
		status: String!
		version: String!
	}

	input UserInput {
		id: ID
		email: String
		username: String
		password: String
	}

	input PostInput {
		id: ID
		title: String
		body: String
		author: ID
	}

	type CreateUserPayload {
		user: Account!
	}

	type CreatePostPayload {
		post: Post!
	}

	type UpdatePostPayload {
		post: Post
	}

	type DeletePostPayload {
		post: Post!
	}

	type TokenPayload {
		token: String!
		payload: TokenClaims!
		refreshExpiresIn: Int!
	}

	type VerifyPayload {
		payload: TokenClaims!
	}

	type TokenClaims {
		username: String!
		exp: Int!
		origIat: Int!
	}
`
