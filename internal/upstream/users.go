package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/openfiscal/notafiscal-api/internal/config"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// UserClient talks to the upstream user service.
type UserClient struct {
	client *client
}

// NewUserClient creates a client for the configured user service.
func NewUserClient(cfg config.UpstreamConfig) *UserClient {
	return &UserClient{client: newClient(cfg.UserServiceURL, cfg.Timeout)}
}

// UserRegistration is the payload the user service expects on /api/registrar.
type UserRegistration struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
	Nivel int    `json:"nivel"`
	Email string `json:"email"`
}

// VerifyPassword checks credentials against the user service. The service
// expects the sha256 hex digest, never the plaintext password, and answers
// 201 with the identity payload when they match.
func (c *UserClient) VerifyPassword(ctx context.Context, login, passwordDigest string) (*utils.Identity, error) {
	body := map[string]string{"login": login, "senha": passwordDigest}

	blob, status, err := c.client.do(ctx, http.MethodPost, "/api/verifica_senha", "", body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, &StatusError{StatusCode: status, Body: blob}
	}

	var identity utils.Identity
	if err := json.Unmarshal(blob, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Register forwards a registration request. Both the 201 and the 400 bodies
// travel back to the caller untouched, so the body and status are returned
// even on failure.
func (c *UserClient) Register(ctx context.Context, reg UserRegistration) (json.RawMessage, int, error) {
	return c.client.do(ctx, http.MethodPost, "/api/registrar", "", reg)
}

// List returns all registered users as the upstream service renders them.
func (c *UserClient) List(ctx context.Context, bearer string) (json.RawMessage, error) {
	blob, status, err := c.client.do(ctx, http.MethodGet, "/api/usuarios", bearer, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{StatusCode: status, Body: blob}
	}
	return blob, nil
}
