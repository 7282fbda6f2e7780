// Package patch implements the merge-patch engine shared by every entity
// that accepts partial updates. A patch request is an untyped field→value
// map; each entity declares an ordered allow-list of patchable fields, and
// every recognized key present in the map is applied independently.
package patch

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/edumgt/eden-api/internal/shared/apperror"
)

// Applier mutates the in-memory entity with the submitted value.
// It may resolve references (returning a NotFound failure aborts the whole
// patch) but must not persist anything.
type Applier func(ctx context.Context, value interface{}) error

// Field is one entry of an entity's patch allow-list.
type Field struct {
	Name  string
	Apply Applier
}

// Apply walks the allow-list in declaration order and applies every
// recognized key present in request. Keys outside the allow-list are
// ignored. If no recognized key is present the patch is rejected with
// NoRecognizedField and nothing is mutated.
func Apply(ctx context.Context, fields []Field, request map[string]interface{}) error {
	applied := false
	for _, f := range fields {
		value, ok := request[f.Name]
		if !ok {
			continue
		}
		if err := f.Apply(ctx, value); err != nil {
			return err
		}
		applied = true
	}

	if !applied {
		return apperror.NoRecognizedField()
	}
	return nil
}

// ========================================
// VALUE COERCION
// ========================================
// JSON decoding hands us interface{} values: strings, float64 for any
// number, json.Number when the decoder uses UseNumber. Each helper coerces
// one variant and reports a mismatch as a validation failure on the field.

// String coerces a patch value to a string.
func String(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperror.Validationf(field, "the '%s' field must be a string", field)
	}
	return s, nil
}

// Int64 coerces a patch value to an integer identifier.
func Int64(field string, value interface{}) (int64, error) {
	switch v := value.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, apperror.Validationf(field, "the '%s' field must be an integer", field)
		}
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, apperror.Validationf(field, "the '%s' field must be an integer", field)
		}
		return n, nil
	default:
		return 0, apperror.Validationf(field, "the '%s' field must be an integer", field)
	}
}

// Float64 coerces a patch value to a float.
func Float64(field string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, apperror.Validationf(field, "the '%s' field must be a number", field)
		}
		return f, nil
	default:
		return 0, apperror.Validationf(field, "the '%s' field must be a number", field)
	}
}

// Decimal coerces a patch value to a decimal, for money fields.
func Decimal(field string, value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, apperror.Validationf(field, "the '%s' field must be a number", field)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, apperror.Validationf(field, "the '%s' field must be a number", field)
		}
		return d, nil
	default:
		return decimal.Decimal{}, apperror.Validationf(field, "the '%s' field must be a number", field)
	}
}
