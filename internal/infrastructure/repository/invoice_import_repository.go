package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
	domainRepo "github.com/openfiscal/notafiscal-api/internal/domain/repository"
	"github.com/openfiscal/notafiscal-api/pkg/pagination"
)

type invoiceImportRepository struct {
	db *gorm.DB
}

// NewInvoiceImportRepository creates a new invoice import repository
func NewInvoiceImportRepository(db *gorm.DB) domainRepo.InvoiceImportRepository {
	return &invoiceImportRepository{db: db}
}

func (r *invoiceImportRepository) Create(ctx context.Context, imp *entity.InvoiceImport) error {
	return r.db.WithContext(ctx).Create(imp).Error
}

func (r *invoiceImportRepository) ListByLogin(ctx context.Context, login string, params *pagination.PaginationParams) ([]entity.InvoiceImport, int64, error) {
	var imports []entity.InvoiceImport
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.InvoiceImport{}).
		Where("login = ?", login)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&imports).Error
	if err != nil {
		return nil, 0, err
	}

	return imports, total, nil
}
