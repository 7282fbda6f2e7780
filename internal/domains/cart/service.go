package cart

import "context"

// Service defines the cart business logic contract.
type Service interface {
	FindByUserID(ctx context.Context, userID string) (*Cart, error)
}
