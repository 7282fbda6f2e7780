package product

import "errors"

// Repository-level errors
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrUsageTimeNotFound     = errors.New("usage time not found")
	ErrConditionTypeNotFound = errors.New("condition type not found")
)
