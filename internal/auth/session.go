// Package auth resolves who owns the cart and favorites of a request.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	pkgauth "github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
)

// SessionHeader carries an anonymous session id between the client and the service
const SessionHeader = "X-Session-ID"

// User is the authenticated storefront customer
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type contextKey string

const (
	ownerKey contextKey = "owner"
	userKey  contextKey = "user"
)

// OwnerFromContext returns the state owner resolved by SessionMiddleware
func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey).(string)
	return owner, ok && owner != ""
}

// UserFromContext returns the authenticated user, if any
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userKey).(*User)
	return user, ok && user != nil
}

// WithOwner stores owner in ctx
func WithOwner(ctx context.Context, owner string) context.Context {
	ctx = context.WithValue(ctx, ownerKey, owner)
	return logger.ContextWithOwner(ctx, owner)
}

// SessionMiddleware resolves the request owner: a valid bearer token gives "user:{id}",
// otherwise the X-Session-ID header is used, generated when absent and echoed back.
// An invalid bearer token falls back to the anonymous session instead of failing the request.
func SessionMiddleware(tokens *pkgauth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token, ok := bearerToken(r); ok {
				claims, err := tokens.ValidateToken(token)
				if err == nil {
					user := &User{ID: claims.UserID, Email: claims.Email, Name: claims.Name}
					ctx = context.WithValue(ctx, userKey, user)
					ctx = WithOwner(ctx, "user:"+user.ID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				logger.Warn(ctx).Err(err).Msg("Invalid token, falling back to session")
			}

			sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			w.Header().Set(SessionHeader, sessionID)

			ctx = WithOwner(ctx, "session:"+sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
