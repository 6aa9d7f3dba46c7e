package request

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Nome       *string  `json:"nome"`
	Descricao  *string  `json:"descricao"`
	Preco      *float64 `json:"preco" binding:"omitempty,min=0"`
	Quantidade *int     `json:"quantidade" binding:"omitempty,min=0"`
}
