package product

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

var zipCodePattern = regexp.MustCompile(`^[0-9]{8}$`)

// Product is a marketplace listing owned by a user.
type Product struct {
	ID int64 `db:"pk_id" json:"id"`

	// References to other entities.
	UsageTimeID     int64 `db:"fk_usage_time_id" json:"usageTimeId"`
	ConditionTypeID int64 `db:"fk_condition_type_id" json:"conditionTypeId"`
	UserID          int64 `db:"fk_user_id" json:"userId"`

	Title         string          `db:"title" json:"title"`
	Description   string          `db:"description" json:"description"`
	Price         decimal.Decimal `db:"price" json:"price"`
	MaxPrice      decimal.Decimal `db:"max_price" json:"maxPrice"`
	SenderZipCode string          `db:"sender_zip_code" json:"senderZipCode"`
	Rating        *float64        `db:"rating" json:"rating,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// positiveDecimal rejects zero and negative money values.
func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_positive", "must be greater than zero")
	}
	return nil
}

// Validate checks the entity's declarative constraints, evaluating all of
// them so every violation is reported at once.
func (p Product) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UsageTimeID,
			validation.Required.Error("the 'usageTime' field must be passed"),
		),
		validation.Field(&p.ConditionTypeID,
			validation.Required.Error("the 'conditionType' field must be passed"),
		),
		validation.Field(&p.UserID,
			validation.Required.Error("the 'user' field must be passed"),
		),
		validation.Field(&p.Title,
			validation.Required.Error("the 'title' field must be passed"),
			validation.Length(1, 60).Error("the 'title' field must not pass the 60 digits limit"),
		),
		validation.Field(&p.Description,
			validation.Required.Error("the 'description' field must be passed"),
			validation.Length(1, 250).Error("the 'description' field must not pass the 250 digits limit"),
		),
		validation.Field(&p.Price,
			validation.By(positiveDecimal),
		),
		validation.Field(&p.MaxPrice,
			validation.By(positiveDecimal),
		),
		validation.Field(&p.SenderZipCode,
			validation.Required.Error("the 'senderZipCode' field must be passed"),
			validation.Match(zipCodePattern).Error("the 'senderZipCode' field must have exactly 8 digits"),
		),
		validation.Field(&p.Rating,
			validation.When(p.Rating != nil,
				validation.Min(0.0).Error("the 'rating' field must be at least 0"),
				validation.Max(5.0).Error("the 'rating' field must be at most 5"),
			),
		),
	)
}

// UsageTime is a read-only lookup entity (how long the product was used).
type UsageTime struct {
	ID          int64  `db:"pk_id" json:"id"`
	Description string `db:"description" json:"description"`
}

// ConditionType is a read-only lookup entity (new, used, refurbished...).
type ConditionType struct {
	ID          int64  `db:"pk_id" json:"id"`
	Description string `db:"description" json:"description"`
}
