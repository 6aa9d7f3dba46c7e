package service

import (
	"context"
	"encoding/json"

	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// productGateway is the slice of the product service client the proxy uses.
type productGateway interface {
	List(ctx context.Context, bearer string) (json.RawMessage, error)
	Update(ctx context.Context, bearer string, id int, upd upstream.ProductUpdate) error
	Delete(ctx context.Context, bearer string, id int) error
}

// ProductService proxies product operations to the upstream product service.
type ProductService struct {
	products   productGateway
	jwtManager *utils.JWTManager
}

// NewProductService creates a new product service
func NewProductService(products productGateway, jwtManager *utils.JWTManager) *ProductService {
	return &ProductService{products: products, jwtManager: jwtManager}
}

// UpdateProductInput carries the updatable product fields.
type UpdateProductInput struct {
	Nome       *string
	Descricao  *string
	Preco      *float64
	Quantidade *int
}

// List returns all products.
func (s *ProductService) List(ctx context.Context, identity utils.Identity) (json.RawMessage, error) {
	bearer, err := s.jwtManager.GenerateToken(identity)
	if err != nil {
		return nil, err
	}

	blob, err := s.products.List(ctx, bearer)
	if err != nil {
		return nil, mapProxyError(err)
	}
	return blob, nil
}

// Update edits one product by its upstream id.
func (s *ProductService) Update(ctx context.Context, identity utils.Identity, id int, input *UpdateProductInput) error {
	bearer, err := s.jwtManager.GenerateToken(identity)
	if err != nil {
		return err
	}

	err = s.products.Update(ctx, bearer, id, upstream.ProductUpdate{
		Nome:       input.Nome,
		Descricao:  input.Descricao,
		Preco:      input.Preco,
		Quantidade: input.Quantidade,
	})
	if err != nil {
		return mapProxyError(err)
	}
	return nil
}

// Delete removes one product by its upstream id.
func (s *ProductService) Delete(ctx context.Context, identity utils.Identity, id int) error {
	bearer, err := s.jwtManager.GenerateToken(identity)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, bearer, id); err != nil {
		return mapProxyError(err)
	}
	return nil
}
