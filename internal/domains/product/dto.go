package product

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ProductRequest creates a new listing. The owner is resolved by email.
type ProductRequest struct {
	UsageTimeID     int64           `json:"usageTimeId" binding:"required"`
	ConditionTypeID int64           `json:"conditionTypeId" binding:"required"`
	Email           string          `json:"email" binding:"required"`
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	MaxPrice        decimal.Decimal `json:"maxPrice"`
	SenderZipCode   string          `json:"senderZipCode" binding:"required"`
	Rating          *float64        `json:"rating,omitempty"`
}

func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UsageTimeID, validation.Required.Error("the 'usageTimeId' field must be passed")),
		validation.Field(&r.ConditionTypeID, validation.Required.Error("the 'conditionTypeId' field must be passed")),
		validation.Field(&r.Email,
			validation.Required.Error("the 'email' field must be passed"),
			is.Email.Error("the 'email' field must be a valid email"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("the 'title' field must be passed"),
			validation.Length(1, 60),
		),
		validation.Field(&r.Description,
			validation.Required.Error("the 'description' field must be passed"),
			validation.Length(1, 250),
		),
		validation.Field(&r.Price, validation.By(positiveDecimal)),
		validation.Field(&r.MaxPrice, validation.By(positiveDecimal)),
		validation.Field(&r.SenderZipCode,
			validation.Required.Error("the 'senderZipCode' field must be passed"),
			validation.Match(zipCodePattern).Error("the 'senderZipCode' field must have exactly 8 digits"),
		),
	)
}
