package entity

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken blacklists a token's jti after logout. Rows older than the
// token's own expiry are dead weight and get pruned.
type RevokedToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	JTI       string    `gorm:"uniqueIndex;size:64;not null"` // jti claim of the revoked token
	Login     string    `gorm:"size:255;index"`
	ExpiresAt time.Time `gorm:"not null;index"` // when the token would have expired anyway
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for RevokedToken
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

// IsExpired checks whether the underlying token has already expired
func (t *RevokedToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
