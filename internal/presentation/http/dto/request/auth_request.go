package request

// LoginRequest represents a login request
type LoginRequest struct {
	Login string `json:"login" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}
