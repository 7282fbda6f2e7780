package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CommentRequest creates a new comment on a product.
type CommentRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	UserID    int64  `json:"userId" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required.Error("the 'productId' field must be passed")),
		validation.Field(&r.UserID, validation.Required.Error("the 'userId' field must be passed")),
		validation.Field(&r.Comment,
			validation.Required.Error("the 'comment' field must be passed"),
			validation.Length(1, 90).Error("the 'comment' must not pass the 90 digits limit"),
		),
	)
}
