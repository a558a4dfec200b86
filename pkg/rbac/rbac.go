// Package rbac provides role-based access control middleware.
package rbac

import (
	"net/http"

	"github.com/shashiranjanraj/tattvam/pkg/response"
)

// RoleFunc resolves the caller's role from an authenticated request.
type RoleFunc func(r *http.Request) (string, bool)

// HasRole returns middleware that allows access only to callers whose
// resolved role is in the given set. The auth middleware must have run
// first so the role is resolvable; otherwise the request is rejected.
func HasRole(resolve RoleFunc, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := resolve(r)
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
