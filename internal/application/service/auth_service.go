package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/openfiscal/notafiscal-api/internal/domain/entity"
	"github.com/openfiscal/notafiscal-api/internal/domain/repository"
	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/apperror"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// credentialVerifier is the slice of the user service client the auth
// service needs; tests substitute it.
type credentialVerifier interface {
	VerifyPassword(ctx context.Context, login, passwordDigest string) (*utils.Identity, error)
}

// AuthService handles authentication-related operations. The gateway stores
// no credentials itself: verification is delegated to the upstream user
// service, which expects a sha256 hex digest of the password.
type AuthService struct {
	users      credentialVerifier
	tokenRepo  repository.TokenRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(users credentialVerifier, tokenRepo repository.TokenRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		users:      users,
		tokenRepo:  tokenRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Login string
	Senha string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Login       string
	Nivel       int
	AccessToken string
}

// Login verifies credentials upstream and issues a gateway token carrying
// the returned identity.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	identity, err := s.users.VerifyPassword(ctx, input.Login, hashPassword(input.Senha))
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(*identity)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Login:       input.Login,
		Nivel:       identity.Nivel,
		AccessToken: token,
	}, nil
}

// Logout revokes the token the request was authenticated with. The jti goes
// to the revocation store until the token would have expired on its own.
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	revoked := &entity.RevokedToken{
		JTI:   claims.ID,
		Login: claims.Identity.Login,
	}
	if claims.ExpiresAt != nil {
		revoked.ExpiresAt = claims.ExpiresAt.Time
	}
	return s.tokenRepo.Revoke(ctx, revoked)
}

func hashPassword(senha string) string {
	digest := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(digest[:])
}
