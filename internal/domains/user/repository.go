package user

import "context"

// Repository defines the user data access contract.
// Find* methods return ErrUserNotFound when no row matches.
type Repository interface {
	// Create persists a new user and assigns its identifier.
	Create(ctx context.Context, u *User) error

	FindByID(ctx context.Context, id int64) (*User, error)
	FindByCPF(ctx context.Context, cpf string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUserName(ctx context.Context, userName string) (*User, error)
	FindByCellphone(ctx context.Context, cellphone string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)

	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error

	// ========================================
	// FAVORITES
	// ========================================

	FindFavoriteProductIDs(ctx context.Context, userID int64) ([]int64, error)
	AddFavorite(ctx context.Context, userID, productID int64) error
	RemoveFavorite(ctx context.Context, userID, productID int64) error
}

// Hasher is the opaque one-way hashing capability used for credentials.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}

// TokenSigner produces signed, time-bounded identity tokens.
type TokenSigner interface {
	Generate(subject string) (string, error)
}
