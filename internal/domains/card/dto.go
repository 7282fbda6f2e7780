package card

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CardRequest registers a payment card for a user.
type CardRequest struct {
	UserID         int64  `json:"userId" binding:"required"`
	CardNumber     string `json:"cardNumber" binding:"required"`
	HolderName     string `json:"holderName" binding:"required"`
	ExpirationDate string `json:"expirationDate" binding:"required"`
	SecurityCode   string `json:"securityCode" binding:"required"`
}

func (r CardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required.Error("the 'userId' field must be passed")),
		validation.Field(&r.CardNumber,
			validation.Required.Error("the 'cardNumber' field must be passed"),
			validation.Match(cardNumberPattern).Error("the 'cardNumber' field must have exactly 16 digits"),
		),
		validation.Field(&r.HolderName,
			validation.Required.Error("the 'holderName' field must be passed"),
			validation.Length(1, 45),
		),
		validation.Field(&r.ExpirationDate,
			validation.Required.Error("the 'expirationDate' field must be passed"),
			validation.Match(expirationPattern).Error("the 'expirationDate' field must be in MM/YY format"),
		),
		validation.Field(&r.SecurityCode,
			validation.Required.Error("the 'securityCode' field must be passed"),
			validation.Match(securityCodePattern).Error("the 'securityCode' field must have exactly 3 digits"),
		),
	)
}

// CardResponse is the public card representation; the number is masked and
// the security code never leaves the service.
type CardResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	CardNumber     string `json:"cardNumber"`
	HolderName     string `json:"holderName"`
	ExpirationDate string `json:"expirationDate"`
}

// ToResponse converts the entity, masking all but the last four digits.
func (c *Card) ToResponse() CardResponse {
	masked := c.CardNumber
	if len(masked) == 16 {
		masked = "************" + masked[12:]
	}
	return CardResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		CardNumber:     masked,
		HolderName:     c.HolderName,
		ExpirationDate: c.ExpirationDate,
	}
}
