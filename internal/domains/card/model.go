package card

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	cardNumberPattern   = regexp.MustCompile(`^[0-9]{16}$`)
	expirationPattern   = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	securityCodePattern = regexp.MustCompile(`^[0-9]{3}$`)
)

// Card is a payment card registered by a user.
type Card struct {
	ID     int64 `db:"pk_id" json:"id"`
	UserID int64 `db:"fk_user_id" json:"userId"`

	CardNumber     string `db:"card_number" json:"cardNumber"`
	HolderName     string `db:"holder_name" json:"holderName"`
	ExpirationDate string `db:"expiration_date" json:"expirationDate"`

	// Never serialized out.
	SecurityCode string `db:"security_code" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Validate checks the entity's declarative constraints.
func (c Card) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserID,
			validation.Required.Error("the 'user' field must be passed"),
		),
		validation.Field(&c.CardNumber,
			validation.Required.Error("the 'cardNumber' field must be passed"),
			validation.Match(cardNumberPattern).Error("the 'cardNumber' field must have exactly 16 digits"),
		),
		validation.Field(&c.HolderName,
			validation.Required.Error("the 'holderName' field must be passed"),
			validation.Length(1, 45).Error("the 'holderName' field must not pass the 45 digits limit"),
		),
		validation.Field(&c.ExpirationDate,
			validation.Required.Error("the 'expirationDate' field must be passed"),
			validation.Match(expirationPattern).Error("the 'expirationDate' field must be in MM/YY format"),
		),
		validation.Field(&c.SecurityCode,
			validation.Required.Error("the 'securityCode' field must be passed"),
			validation.Match(securityCodePattern).Error("the 'securityCode' field must have exactly 3 digits"),
		),
	)
}
