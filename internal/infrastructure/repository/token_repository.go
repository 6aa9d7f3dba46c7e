package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
	domainRepo "github.com/openfiscal/notafiscal-api/internal/domain/repository"
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token revocation repository
func NewTokenRepository(db *gorm.DB) domainRepo.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var token entity.RevokedToken
	err := r.db.WithContext(ctx).
		Where("jti = ?", jti).
		First(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *tokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.RevokedToken{}).Error
}
