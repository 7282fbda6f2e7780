package card

import "context"

// Repository defines the card data access contract.
type Repository interface {
	// Create persists a new card and assigns its identifier.
	Create(ctx context.Context, c *Card) error

	FindByID(ctx context.Context, id int64) (*Card, error)
	FindByUserID(ctx context.Context, userID int64) ([]Card, error)

	Delete(ctx context.Context, id int64) error
}
