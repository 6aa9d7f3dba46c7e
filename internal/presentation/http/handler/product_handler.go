package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/application/service"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/request"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/response"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/middleware"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns all products as reported by the upstream service.
func (h *ProductHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	blob, err := h.productService.List(c.Request.Context(), claims.Identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "application/json", blob)
}

// Update edits one product by its upstream id.
func (h *ProductHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err = h.productService.Update(c.Request.Context(), claims.Identity, id, &service.UpdateProductInput{
		Nome:       req.Nome,
		Descricao:  req.Descricao,
		Preco:      req.Preco,
		Quantidade: req.Quantidade,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", nil)
}

// Delete removes one product by its upstream id.
func (h *ProductHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), claims.Identity, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}
