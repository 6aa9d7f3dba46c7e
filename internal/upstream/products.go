package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openfiscal/notafiscal-api/internal/config"
)

// ProductClient talks to the upstream product service.
type ProductClient struct {
	client *client
}

// NewProductClient creates a client for the configured product service.
func NewProductClient(cfg config.UpstreamConfig) *ProductClient {
	return &ProductClient{client: newClient(cfg.ProductServiceURL, cfg.Timeout)}
}

// ProductRegistration is the payload the product service expects when a
// product is created, including the ones derived from invoice line items.
type ProductRegistration struct {
	Nome       string  `json:"nome"`
	Descricao  string  `json:"descricao"`
	Preco      float64 `json:"preco"`
	Quantidade int     `json:"quantidade"`
}

// ProductUpdate carries the updatable product fields.
type ProductUpdate struct {
	Nome       *string  `json:"nome"`
	Descricao  *string  `json:"descricao"`
	Preco      *float64 `json:"preco"`
	Quantidade *int     `json:"quantidade"`
}

// List returns all products as the upstream service renders them.
func (c *ProductClient) List(ctx context.Context, bearer string) (json.RawMessage, error) {
	blob, status, err := c.client.do(ctx, http.MethodGet, "/api/produtos", bearer, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{StatusCode: status, Body: blob}
	}
	return blob, nil
}

// Register creates one product.
func (c *ProductClient) Register(ctx context.Context, bearer string, reg ProductRegistration) error {
	blob, status, err := c.client.do(ctx, http.MethodPost, "/api/registrar", bearer, reg)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &StatusError{StatusCode: status, Body: blob}
	}
	return nil
}

// Update edits one product by its upstream id.
func (c *ProductClient) Update(ctx context.Context, bearer string, id int, upd ProductUpdate) error {
	blob, status, err := c.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/produto/%d", id), bearer, upd)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &StatusError{StatusCode: status, Body: blob}
	}
	return nil
}

// Delete removes one product by its upstream id.
func (c *ProductClient) Delete(ctx context.Context, bearer string, id int) error {
	blob, status, err := c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/produto/%d", id), bearer, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &StatusError{StatusCode: status, Body: blob}
	}
	return nil
}
