package router

import (
	"net/http"
	"time"

	"github.com/compras/backend/internal/infrastructure/auth"
	"github.com/compras/backend/internal/infrastructure/config"
	"github.com/compras/backend/internal/infrastructure/logger"
	"github.com/compras/backend/internal/infrastructure/persistence"
	"github.com/compras/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Registrar is implemented by handlers that register their own routes
// on the versioned API group.
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router assembles the gin engine: global middleware, health check and
// the versioned API group with JWT authentication.
type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
	log    *zap.Logger
}

// New creates a configured router. The returned Router exposes the API
// group so callers can attach handlers and role-guarded subgroups.
func New(cfg *config.Config, db *persistence.Database, jwtService *auth.JWTService, log *zap.Logger) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", healthHandler(db))

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthWithConfig(middleware.JWTConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/login",
		},
	}))

	return &Router{engine: engine, api: api, log: log}
}

// Engine returns the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Register attaches handlers to the versioned API group.
func (r *Router) Register(handlers ...Registrar) {
	for _, h := range handlers {
		h.RegisterRoutes(r.api)
	}
}

// AdminGroup returns a subgroup of the API restricted to the given
// roles.
func (r *Router) AdminGroup(roles ...string) *gin.RouterGroup {
	g := r.api.Group("")
	g.Use(middleware.RequireRole(roles...))
	return g
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
