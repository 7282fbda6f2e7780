package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Comment is a user's remark on a product.
type Comment struct {
	ID        int64  `db:"pk_id" json:"id"`
	ProductID int64  `db:"fk_product_id" json:"productId"`
	UserID    int64  `db:"fk_user_id" json:"userId"`
	Comment   string `db:"comment" json:"comment"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Validate checks the entity's declarative constraints.
func (c Comment) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ProductID,
			validation.Required.Error("the 'product' field must be passed"),
		),
		validation.Field(&c.UserID,
			validation.Required.Error("the 'user' field must be passed"),
		),
		validation.Field(&c.Comment,
			validation.Required.Error("the 'comment' field must be passed"),
			validation.Length(1, 90).Error("the 'comment' must not pass the 90 digits limit"),
		),
	)
}
