package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// REGISTRATION DTOs
// ========================================

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	Email     string `json:"email" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Cellphone string `json:"cellphone,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("the 'name' field must be passed"),
			validation.Length(1, 45),
		),
		validation.Field(&r.CPF,
			validation.Required.Error("the 'cpf' field must be passed"),
			validation.Length(11, 11).Error("the 'cpf' field must have exactly 11 digits"),
			validation.Match(digitsOnly).Error("the 'cpf' field must contain only digits"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("the 'email' field must be passed"),
			is.Email.Error("the 'email' field must be a valid email"),
		),
		validation.Field(&r.UserName,
			validation.Required.Error("the 'userName' field must be passed"),
			validation.Length(1, 45),
		),
		validation.Field(&r.Password,
			validation.Required.Error("the 'password' field must be passed"),
			validation.Length(8, 128).Error("the 'password' field must have between 8 and 128 characters"),
		),
		validation.Field(&r.Cellphone,
			validation.When(r.Cellphone != "",
				validation.Length(11, 11).Error("the 'cellphone' field must have exactly 11 digits"),
				validation.Match(digitsOnly).Error("the 'cellphone' field must contain only digits"),
			),
		),
	)
}

// UserResponse is the public user representation, with the user's cart.
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CPF       string  `json:"cpf"`
	Email     string  `json:"email"`
	UserName  string  `json:"userName"`
	Cellphone *string `json:"cellphone,omitempty"`
	CartID    *int64  `json:"cartId,omitempty"`
}

// ToResponse converts the entity into its public representation.
func (u *User) ToResponse(cartID *int64) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		CPF:       u.CPF,
		Email:     u.Email,
		UserName:  u.UserName,
		Cellphone: u.Cellphone,
		CartID:    cartID,
	}
}

// ========================================
// TOKEN DTOs
// ========================================

// TokenRequest asks for trust-based token issuance.
type TokenRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// LoginRequest asks for credential-verified token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse carries the signed token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ========================================
// FAVORITE DTOs
// ========================================

// RegisterFavoriteRequest links a product to a user's favorites.
type RegisterFavoriteRequest struct {
	UserID    int64 `json:"userId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
}

func (r RegisterFavoriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.ProductID, validation.Required),
	)
}
