package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceImport records one invoice-page extraction that registered
// products upstream: who ran it, against which QR-code URL, and what came
// out. The extracted record itself is not persisted, only this audit line.
type InvoiceImport struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Login        string    `gorm:"size:255;not null;index"`
	URL          string    `gorm:"type:text;not null"`
	MerchantName string    `gorm:"size:255"`
	ItemCount    int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

// TableName returns the table name for InvoiceImport
func (InvoiceImport) TableName() string {
	return "invoice_imports"
}
