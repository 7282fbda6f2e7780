package user

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	ID int64 `db:"pk_id" json:"id"`

	Name     string `db:"name" json:"name"`
	CPF      string `db:"cpf" json:"cpf"`
	Email    string `db:"email" json:"email"`
	UserName string `db:"user_name" json:"userName"`

	// Stored as a bcrypt hash. Never exposed in JSON.
	PasswordHash string `db:"password" json:"-"`

	Cellphone *string `db:"cellphone" json:"cellphone,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Validate checks the entity's declarative constraints. Every rule is
// evaluated, so the caller can report all violations in one response.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name,
			validation.Required.Error("the 'name' field must be passed"),
			validation.Length(1, 45).Error("the 'name' field must not pass the 45 digits limit"),
		),
		validation.Field(&u.CPF,
			validation.Required.Error("the 'cpf' field must be passed"),
			validation.Length(11, 11).Error("the 'cpf' field must have exactly 11 digits"),
			validation.Match(digitsOnly).Error("the 'cpf' field must contain only digits"),
		),
		validation.Field(&u.Email,
			validation.Required.Error("the 'email' field must be passed"),
			is.Email.Error("the 'email' field must be a valid email"),
			validation.Length(1, 254).Error("the 'email' field must not pass the 254 digits limit"),
		),
		validation.Field(&u.UserName,
			validation.Required.Error("the 'userName' field must be passed"),
			validation.Length(1, 45).Error("the 'userName' field must not pass the 45 digits limit"),
		),
		validation.Field(&u.PasswordHash,
			validation.Required.Error("the 'password' field must be passed"),
		),
		validation.Field(&u.Cellphone,
			validation.When(u.Cellphone != nil,
				validation.Length(11, 11).Error("the 'cellphone' field must have exactly 11 digits"),
				validation.Match(digitsOnly).Error("the 'cellphone' field must contain only digits"),
			),
		),
	)
}
