package repository

import (
	"context"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
	"github.com/openfiscal/notafiscal-api/pkg/pagination"
)

// InvoiceImportRepository persists the invoice import audit log.
type InvoiceImportRepository interface {
	Create(ctx context.Context, imp *entity.InvoiceImport) error
	ListByLogin(ctx context.Context, login string, params *pagination.PaginationParams) ([]entity.InvoiceImport, int64, error)
}
