package product

import "context"

// Service defines the product business logic contract.
type Service interface {
	Register(ctx context.Context, req ProductRequest) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByTitleLike(ctx context.Context, title string) ([]Product, error)
	PartialUpdate(ctx context.Context, id string, request map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
