package middleware

import (
	"net/http"

	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles.
// Admins pass regardless of role. Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetIsAdminFromContext(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.Role(role) == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetIsAdminFromContext(r.Context()) {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireStaff allows any role-bearing staff account
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor, entity.RoleReceptionist)(next)
}
