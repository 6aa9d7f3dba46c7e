package service

import (
	"context"
	"encoding/json"

	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// userGateway is the slice of the user service client the proxy uses.
type userGateway interface {
	Register(ctx context.Context, reg upstream.UserRegistration) (json.RawMessage, int, error)
	List(ctx context.Context, bearer string) (json.RawMessage, error)
}

// UserService proxies user operations to the upstream user service. Every
// authenticated call re-mints a service token from the caller's identity.
type UserService struct {
	users      userGateway
	jwtManager *utils.JWTManager
}

// NewUserService creates a new user service
func NewUserService(users userGateway, jwtManager *utils.JWTManager) *UserService {
	return &UserService{users: users, jwtManager: jwtManager}
}

// RegisterInput represents the registration input
type RegisterInput struct {
	Login string
	Senha string
	Nivel int
	Email string
}

// Register forwards a new-user registration and returns the upstream body
// and status untouched, the way the gateway has always behaved.
func (s *UserService) Register(ctx context.Context, input *RegisterInput) (json.RawMessage, int, error) {
	return s.users.Register(ctx, upstream.UserRegistration{
		Login: input.Login,
		Senha: input.Senha,
		Nivel: input.Nivel,
		Email: input.Email,
	})
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context, identity utils.Identity) (json.RawMessage, error) {
	bearer, err := s.jwtManager.GenerateToken(identity)
	if err != nil {
		return nil, err
	}

	blob, err := s.users.List(ctx, bearer)
	if err != nil {
		return nil, mapProxyError(err)
	}
	return blob, nil
}
