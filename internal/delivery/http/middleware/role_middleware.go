package middleware

import (
	"net/http"

	"lenglogs/internal/domain/entity"
	"lenglogs/pkg/response"
)

// RequireRole creates a middleware that checks the loaded profile has one of the roles.
// Must run after LoadProfile.
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, ok := GetProfileFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, role := range allowed {
				if profile.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireManager is a convenience middleware for manager-only endpoints
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(entity.RoleManager)(next)
}
