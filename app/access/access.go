// Package access is the layer between the bearer credential on a
// request and the caller identity handed to the cart and order
// services. It verifies the token, resolves the subject to a live user
// record (a token for a vanished user is worthless), and stores the
// identity in the request context.
package access

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/auth"
	"github.com/shashiranjanraj/tattvam/pkg/logger"
	"github.com/shashiranjanraj/tattvam/pkg/response"
)

// ctxKey is the unexported key used to store the identity in context.
type ctxKey struct{}

// FromCtx extracts the resolved identity from ctx.
func FromCtx(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(models.Identity)
	return id, ok
}

// RoleFromRequest adapts FromCtx to the rbac.RoleFunc shape.
func RoleFromRequest(r *http.Request) (string, bool) {
	id, ok := FromCtx(r.Context())
	if !ok {
		return "", false
	}
	return id.Role, true
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Middleware authenticates the request. The token is verified, the
// subject is resolved against the live user store, and the identity is
// injected into the request context. Missing, malformed, and expired
// tokens all yield 401; expired ones are logged distinctly.
func Middleware(users *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				response.Unauthorized(w, "Missing authentication credentials")
				return
			}

			userID, err := auth.VerifyToken(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					logger.WithCtx(r.Context()).Info("rejected expired token")
					response.Unauthorized(w, "Token expired")
					return
				}
				response.Unauthorized(w, "Invalid authentication credentials")
				return
			}

			user, ok := users.Get(userID)
			if !ok {
				// issued for a user that no longer exists
				response.Unauthorized(w, "User not found")
				return
			}

			identity := models.Identity{UserID: user.ID, Role: user.Role}
			ctx := context.WithValue(r.Context(), ctxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MustIdentity returns the identity stored by Middleware. Handlers
// behind the middleware can assume it is present; the zero identity is
// returned (and the caller should 401) if somehow it is not.
func MustIdentity(r *http.Request) models.Identity {
	id, _ := FromCtx(r.Context())
	return id
}
