package handler

import (
	identityapp "github.com/compras/backend/internal/application/identity"
	"github.com/compras/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication and user management endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers authentication routes. User management routes
// are registered separately so the router can guard them by role.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", h.Me)
		auth.POST("/change-password", h.ChangePassword)
	}
}

// RegisterUserRoutes registers admin-only user management routes
func (h *AuthHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.PATCH("/:id/active", h.SetActive)
	}
}

// Login authenticates a user and issues a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Me returns the authenticated user's identity
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, gin.H{
		"id":       userID,
		"username": middleware.GetJWTUsername(c),
		"role":     middleware.GetJWTRole(c),
	})
}

// ChangePassword changes the authenticated user's own password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateUser creates a new user account
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// ListUsers lists user accounts with pagination
func (h *AuthHandler) ListUsers(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive activates or deactivates a user account
func (h *AuthHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}
