package request

// RegisterUserRequest represents a user registration request, forwarded to
// the upstream user service
type RegisterUserRequest struct {
	Login string `json:"login" binding:"required"`
	Senha string `json:"senha" binding:"required"`
	Nivel int    `json:"nivel" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
