package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/application/service"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/request"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/response"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user against the upstream user service and returns
// a gateway access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Login: req.Login,
		Senha: req.Senha,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"login":        output.Login,
		"nivel":        output.Nivel,
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
	})
}

// Logout revokes the caller's token.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logged out successfully", nil)
}

// Verify reports whether the caller's token is still valid. Reaching this
// handler means the auth middleware already accepted the token.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Token expired or invalid")
		return
	}

	response.OK(c, "Token is valid", gin.H{
		"login": claims.Identity.Login,
		"nivel": claims.Identity.Nivel,
	})
}
