package cart

import "context"

// Repository defines the cart data access contract.
type Repository interface {
	// Create persists a new cart and assigns its identifier.
	Create(ctx context.Context, c *Cart) error

	// FindByUserID returns ErrCartNotFound when the user has no cart.
	FindByUserID(ctx context.Context, userID int64) (*Cart, error)

	Delete(ctx context.Context, id int64) error
}
