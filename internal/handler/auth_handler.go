package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kunci-cimahi/service-booking/internal/auth"
	"github.com/kunci-cimahi/service-booking/internal/config"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

// AuthHandler issues admin session tokens.
type AuthHandler struct {
	admin      config.AdminConfig
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(admin config.AdminConfig, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{admin: admin, jwtManager: jwtManager}
}

// RegisterRoutes registers the login route.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/auth/login", h.Login)
}

// Login handles POST /api/v1/auth/login, checking the configured admin
// credential and issuing a JWT on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if body.Username != h.admin.Username || !auth.VerifyPassword(h.admin.PasswordHash, body.Password) {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := h.jwtManager.GenerateToken(body.Username, auth.RoleAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"token": token})
}
