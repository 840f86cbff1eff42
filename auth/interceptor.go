package auth

import (
	"context"
	"net/http"
	"strings"

	"hearing-hub/domain"

	"github.com/gorilla/mux"
)

// Paths that do not require JWT authentication.
var publicPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller.
type Identity struct {
	Username domain.Username
	Roles    []string
	IsAdmin  bool
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// Middleware handles JWT validation for incoming HTTP calls.
// Browsers cannot set headers on a websocket upgrade, the token is then read
// from the access_token query parameter.
func Middleware(tokens *TokenService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, "authorization token is missing", http.StatusUnauthorized)
				return
			}
			claims, err := tokens.ValidateToken(tokenStr)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				Username: domain.NewUsername(claims.Username),
				Roles:    claims.Roles,
				IsAdmin:  claims.IsAdmin(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}
