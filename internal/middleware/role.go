package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/domain"
	"tradehub/internal/pkg/response"
)

// RequireRole ensures the authenticated user has one of the given roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		actor := domain.Role(raw.(string))
		for _, r := range roles {
			if actor == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly middleware requires the ADMIN role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// CustomerOnly requires a job-owning customer role.
func CustomerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleCustResidential, domain.RoleCustCommercial)
}

// ContractorOnly requires the SUBCONTRACTOR role.
func ContractorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSubcontractor)
}
