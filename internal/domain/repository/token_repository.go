package repository

import (
	"context"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
)

// TokenRepository is the revocation capability the auth layer depends on.
// It is injected rather than consulted through process-wide state so the
// middleware can be tested with a fake and the store swapped out.
type TokenRepository interface {
	Revoke(ctx context.Context, token *entity.RevokedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context) error
}
