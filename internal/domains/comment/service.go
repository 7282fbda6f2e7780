package comment

import "context"

// Service defines the comment business logic contract.
type Service interface {
	Register(ctx context.Context, req CommentRequest) (*Comment, error)
	FindByProductID(ctx context.Context, productID string) ([]Comment, error)
	PartialUpdate(ctx context.Context, id string, request map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
