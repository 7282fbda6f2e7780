package comment

import "context"

// Repository defines the comment data access contract.
type Repository interface {
	// Create persists a new comment and assigns its identifier.
	Create(ctx context.Context, c *Comment) error

	FindByID(ctx context.Context, id int64) (*Comment, error)
	FindByProductID(ctx context.Context, productID int64) ([]Comment, error)

	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}
