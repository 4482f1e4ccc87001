// Package auth provides JWT authentication for the blog-api.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Timiemmy/Blog-Api-2/internal/config"
)

// Sentinel errors surfaced to the GraphQL layer.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("please enter valid credentials")
	ErrRefreshExpired     = errors.New("refresh has expired")
)

// Context keys for auth data
type contextKey string

const (
	contextKeyAuth contextKey = "auth"
)

// Context represents the authenticated user context attached to a request.
// A zero UserID means the caller is anonymous.
type Context struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Expires  int64  `json:"exp,omitempty"`
}

// FromContext extracts the auth context from a request context.
func FromContext(ctx context.Context) *Context {
	if auth, ok := ctx.Value(contextKeyAuth).(*Context); ok {
		return auth
	}
	return &Context{}
}

// WithContext attaches an auth context to ctx. Exposed for tests and for the
// HTTP middleware.
func WithContext(ctx context.Context, authCtx *Context) context.Context {
	return context.WithValue(ctx, contextKeyAuth, authCtx)
}

// RequireUser gates a resolver on an authenticated caller.
func RequireUser(ctx context.Context) (*Context, error) {
	authCtx := FromContext(ctx)
	if authCtx.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	return authCtx, nil
}

// Claims is the validated claim set of a blog-api token.
type Claims struct {
	UserID   string
	Username string
	Exp      int64
	OrigIat  int64
}

type tokenClaims struct {
	Username string `json:"username"`
	OrigIat  int64  `json:"origIat"`
	jwt.RegisteredClaims
}

// Provider issues, verifies, and refreshes HS256 bearer tokens.
type Provider struct {
	secret     []byte
	tokenTTL   time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewProvider creates a token provider from service configuration.
func NewProvider(cfg *config.Config) *Provider {
	return &Provider{
		secret:     []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

// Issue signs a new token bound to the given account. origIat marks the start
// of the refresh window and is preserved across refreshes.
func (p *Provider) Issue(userID, username string) (string, *Claims, error) {
	now := p.now()
	return p.sign(userID, username, now, now.Unix())
}

// Verify parses and validates a token string.
func (p *Provider) Verify(tokenString string) (*Claims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	out := &Claims{
		UserID:   claims.Subject,
		Username: claims.Username,
		OrigIat:  claims.OrigIat,
	}
	if claims.ExpiresAt != nil {
		out.Exp = claims.ExpiresAt.Unix()
	}
	return out, nil
}

// Refresh re-issues a still-valid token with a fresh expiry. The refresh
// window is anchored at the original issue time, so a token cannot be kept
// alive indefinitely.
func (p *Provider) Refresh(tokenString string) (string, *Claims, error) {
	claims, err := p.Verify(tokenString)
	if err != nil {
		return "", nil, err
	}
	if p.now().After(time.Unix(claims.OrigIat, 0).Add(p.refreshTTL)) {
		return "", nil, ErrRefreshExpired
	}
	return p.sign(claims.UserID, claims.Username, p.now(), claims.OrigIat)
}

// RefreshExpiresAt reports the unix time after which the token can no longer
// be refreshed.
func (p *Provider) RefreshExpiresAt(claims *Claims) int64 {
	return time.Unix(claims.OrigIat, 0).Add(p.refreshTTL).Unix()
}

func (p *Provider) sign(userID, username string, now time.Time, origIat int64) (string, *Claims, error) {
	exp := now.Add(p.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Username: username,
		OrigIat:  origIat,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, &Claims{
		UserID:   userID,
		Username: username,
		Exp:      exp.Unix(),
		OrigIat:  origIat,
	}, nil
}

// Middleware returns an HTTP middleware that resolves the Bearer token into
// an auth context. Requests without a valid token proceed anonymously; the
// gated resolvers reject them individually so errors surface as GraphQL
// error entries rather than transport-level 401s.
func Middleware(provider *Provider, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), &Context{})))
				return
			}
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := provider.Verify(tokenString)
			if err != nil {
				if cfg.AuthDebug {
					log.Printf("auth: rejected bearer token: %v", err)
				}
				next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), &Context{})))
				return
			}

			authCtx := &Context{
				UserID:   claims.UserID,
				Username: claims.Username,
				Expires:  claims.Exp,
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), authCtx)))
		})
	}
}
