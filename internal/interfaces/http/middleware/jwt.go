package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/compras/backend/internal/infrastructure/auth"
	"github.com/compras/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "jwt_username"
	JWTRoleKey     = "jwt_role"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTConfig holds configuration for the JWT middleware
type JWTConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are exact paths that don't require authentication
	SkipPaths []string
}

// DefaultJWTConfig returns the default JWT middleware configuration
func DefaultJWTConfig(jwtService *auth.JWTService) JWTConfig {
	return JWTConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/login",
		},
	}
}

// JWTAuth creates JWT authentication middleware with the default config
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthWithConfig creates JWT authentication middleware
func JWTAuthWithConfig(cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrCodeUnauthorized
			if errors.Is(err, auth.ErrExpiredToken) {
				code = "TOKEN_EXPIRED"
			}
			abortUnauthorized(c, code, "Token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTUsernameKey, claims.Username)
		c.Set(JWTRoleKey, claims.Role)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetJWTUserID returns the authenticated user id, or ""
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTUsername returns the authenticated username, or ""
func GetJWTUsername(c *gin.Context) string {
	return c.GetString(JWTUsernameKey)
}

// GetJWTRole returns the authenticated user's role, or ""
func GetJWTRole(c *gin.Context) string {
	return c.GetString(JWTRoleKey)
}
