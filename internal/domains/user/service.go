package user

import (
	"context"

	"github.com/edumgt/eden-api/internal/domains/product"
)

// Service defines the user business logic contract.
type Service interface {
	// Registration & account
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	FindAll(ctx context.Context) ([]User, error)
	FindByParameter(ctx context.Context, id, cpf, email string) (*UserResponse, error)
	PartialUpdate(ctx context.Context, id string, request map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// Token issuance
	Token(ctx context.Context, req TokenRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// Favorites
	Favorites(ctx context.Context, userID string) ([]product.Product, error)
	RegisterFavorite(ctx context.Context, req RegisterFavoriteRequest) (*UserResponse, error)
	DeleteFavorite(ctx context.Context, userID, productID string) error
}
