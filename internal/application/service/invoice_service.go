package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
	"github.com/openfiscal/notafiscal-api/internal/domain/repository"
	"github.com/openfiscal/notafiscal-api/internal/nfce"
	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/apperror"
	"github.com/openfiscal/notafiscal-api/pkg/pagination"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// ErrInvoiceImport is the only failure shape the caller sees for a failed
// import; parser internals never cross this boundary.
var ErrInvoiceImport = apperror.NewAppError(500, "Failed to read the invoice")

// invoiceExtractor is the pipeline entry point; tests substitute it.
type invoiceExtractor interface {
	Extract(ctx context.Context, url string) (*nfce.Invoice, error)
}

// productRegistrar is the slice of the product client used for imports.
type productRegistrar interface {
	Register(ctx context.Context, bearer string, reg upstream.ProductRegistration) error
}

// InvoiceService runs the invoice extraction pipeline and registers the
// resulting products upstream.
type InvoiceService struct {
	extractor  invoiceExtractor
	products   productRegistrar
	importRepo repository.InvoiceImportRepository
	jwtManager *utils.JWTManager
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	extractor invoiceExtractor,
	products productRegistrar,
	importRepo repository.InvoiceImportRepository,
	jwtManager *utils.JWTManager,
) *InvoiceService {
	return &InvoiceService{
		extractor:  extractor,
		products:   products,
		importRepo: importRepo,
		jwtManager: jwtManager,
	}
}

// ImportInput represents an invoice import request
type ImportInput struct {
	URL      string
	Identity utils.Identity
}

// ImportFromURL extracts the invoice at the given QR-code URL, transforms
// each line item into a product registration and posts them all to the
// product service. The merchant name becomes each product's description.
// Any failure along the way collapses into ErrInvoiceImport.
func (s *InvoiceService) ImportFromURL(ctx context.Context, input *ImportInput) ([]upstream.ProductRegistration, error) {
	invoice, err := s.extractor.Extract(ctx, input.URL)
	if err != nil {
		log.Printf("invoice import: extraction failed for %s: %v", input.URL, err)
		return nil, ErrInvoiceImport
	}

	registrations, err := transformItems(invoice)
	if err != nil {
		log.Printf("invoice import: transform failed for %s: %v", input.URL, err)
		return nil, ErrInvoiceImport
	}

	bearer, err := s.jwtManager.GenerateToken(input.Identity)
	if err != nil {
		return nil, err
	}

	for _, reg := range registrations {
		if err := s.products.Register(ctx, bearer, reg); err != nil {
			log.Printf("invoice import: product registration failed for %s: %v", input.URL, err)
			return nil, ErrInvoiceImport
		}
	}

	imp := &entity.InvoiceImport{
		Login:        input.Identity.Login,
		URL:          input.URL,
		MerchantName: invoice.Merchant.Name,
		ItemCount:    len(registrations),
	}
	if err := s.importRepo.Create(ctx, imp); err != nil {
		// The products are already registered; a missing audit row is not
		// worth failing the whole import over.
		log.Printf("Warning: failed to record invoice import: %v", err)
	}

	return registrations, nil
}

// History lists the caller's past imports, newest first.
func (s *InvoiceService) History(ctx context.Context, login string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InvoiceImport], error) {
	params.Validate()

	imports, total, err := s.importRepo.ListByLogin(ctx, login, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(imports, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// transformItems converts extracted line items into product registrations:
// the price comes from the line total with the comma decimal separator
// normalized, the quantity must parse as an integer.
func transformItems(invoice *nfce.Invoice) ([]upstream.ProductRegistration, error) {
	registrations := make([]upstream.ProductRegistration, 0, len(invoice.Items))
	for i, item := range invoice.Items {
		preco, err := parseDecimal(item.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d: bad total price %q: %w", i+1, item.TotalPrice, err)
		}
		quantidade, err := parseQuantity(item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item %d: bad quantity %q: %w", i+1, item.Quantity, err)
		}

		registrations = append(registrations, upstream.ProductRegistration{
			Nome:       item.ProductName,
			Descricao:  invoice.Merchant.Name,
			Preco:      preco,
			Quantidade: quantidade,
		})
	}
	return registrations, nil
}

// parseDecimal reads a Brazilian decimal ("15,00") as a float.
func parseDecimal(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
}

func parseQuantity(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
