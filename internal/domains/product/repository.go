package product

import "context"

// Repository defines the product data access contract.
// Find* methods return ErrProductNotFound when no row matches.
type Repository interface {
	// Create persists a new product and assigns its identifier.
	Create(ctx context.Context, p *Product) error

	FindByID(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByTitleLike(ctx context.Context, title string) ([]Product, error)

	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}

// UsageTimeRepository resolves usage-time references.
type UsageTimeRepository interface {
	FindByID(ctx context.Context, id int64) (*UsageTime, error)
}

// ConditionTypeRepository resolves condition-type references.
type ConditionTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*ConditionType, error)
}
