package middleware

import (
	"net/http"

	"github.com/compras/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 unless the authenticated user carries one
// of the given roles. Must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Insufficient role", GetRequestID(c)))
			return
		}
		c.Next()
	}
}
