package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/application/service"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/request"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/response"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/middleware"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register forwards a new-user registration to the upstream user service.
// The upstream body and status are passed through verbatim so clients keep
// seeing the same validation messages they always did.
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	body, status, err := h.userService.Register(c.Request.Context(), &service.RegisterInput{
		Login: req.Login,
		Senha: req.Senha,
		Nivel: req.Nivel,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(status, "application/json", body)
}

// List returns all registered users as reported by the upstream service.
func (h *UserHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	blob, err := h.userService.List(c.Request.Context(), claims.Identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "application/json", blob)
}
