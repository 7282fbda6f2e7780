package card

import "context"

// Service defines the card business logic contract.
type Service interface {
	Register(ctx context.Context, req CardRequest) (*CardResponse, error)
	FindByUserID(ctx context.Context, userID string) ([]CardResponse, error)
	Delete(ctx context.Context, id string) error
}
