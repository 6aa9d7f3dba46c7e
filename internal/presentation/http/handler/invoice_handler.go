package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/application/service"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/request"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/dto/response"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/middleware"
	"github.com/openfiscal/notafiscal-api/pkg/pagination"
)

// InvoiceHandler handles invoice import HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Import fetches the invoice page behind a QR-code URL, extracts its line
// items and registers each one as a product on behalf of the caller.
func (h *InvoiceHandler) Import(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req request.ImportInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items, err := h.invoiceService.ImportFromURL(c.Request.Context(), &service.ImportInput{
		URL:      req.NotaURL,
		Identity: claims.Identity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice imported successfully", gin.H{
		"items_registered": len(items),
		"items":            items,
	})
}

// History lists the caller's past invoice imports, newest first.
func (h *InvoiceHandler) History(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.invoiceService.History(c.Request.Context(), claims.Identity.Login, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Import history retrieved successfully", result)
}
