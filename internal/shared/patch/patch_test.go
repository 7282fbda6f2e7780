package patch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumgt/eden-api/internal/shared/apperror"
)

type target struct {
	Name  string
	Count int64
}

func fieldsFor(tgt *target) []Field {
	return []Field{
		{Name: "name", Apply: func(ctx context.Context, value interface{}) error {
			v, err := String("name", value)
			if err != nil {
				return err
			}
			tgt.Name = v
			return nil
		}},
		{Name: "count", Apply: func(ctx context.Context, value interface{}) error {
			v, err := Int64("count", value)
			if err != nil {
				return err
			}
			tgt.Count = v
			return nil
		}},
	}
}

func TestApply_AppliesEveryRecognizedField(t *testing.T) {
	tgt := &target{}
	request := map[string]interface{}{
		"name":  "updated",
		"count": float64(7),
	}

	err := Apply(context.Background(), fieldsFor(tgt), request)
	require.NoError(t, err)
	assert.Equal(t, "updated", tgt.Name)
	assert.Equal(t, int64(7), tgt.Count)
}

func TestApply_IgnoresUnknownKeys(t *testing.T) {
	tgt := &target{}
	request := map[string]interface{}{
		"name":    "updated",
		"unknown": "whatever",
	}

	err := Apply(context.Background(), fieldsFor(tgt), request)
	require.NoError(t, err)
	assert.Equal(t, "updated", tgt.Name)
}

func TestApply_NoRecognizedField(t *testing.T) {
	tgt := &target{}
	request := map[string]interface{}{
		"unknown": "whatever",
	}

	err := Apply(context.Background(), fieldsFor(tgt), request)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNoRecognizedField, apperror.KindOf(err))
	assert.Equal(t, &target{}, tgt)
}

func TestApply_EmptyRequest(t *testing.T) {
	tgt := &target{}

	err := Apply(context.Background(), fieldsFor(tgt), map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNoRecognizedField, apperror.KindOf(err))
}

func TestApply_StopsOnApplierError(t *testing.T) {
	boom := errors.New("boom")
	applied := []string{}
	fields := []Field{
		{Name: "a", Apply: func(ctx context.Context, value interface{}) error {
			applied = append(applied, "a")
			return nil
		}},
		{Name: "b", Apply: func(ctx context.Context, value interface{}) error {
			return boom
		}},
		{Name: "c", Apply: func(ctx context.Context, value interface{}) error {
			applied = append(applied, "c")
			return nil
		}},
	}
	request := map[string]interface{}{"a": 1, "b": 2, "c": 3}

	err := Apply(context.Background(), fields, request)
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{"a"}, applied)
}

// ========================================
// COERCION
// ========================================

func TestString_RejectsNonString(t *testing.T) {
	_, err := String("name", 12)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestInt64_Coercions(t *testing.T) {
	n, err := Int64("id", float64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = Int64("id", json.Number("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = Int64("id", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestInt64_RejectsFractional(t *testing.T) {
	_, err := Int64("id", 1.5)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestInt64_RejectsString(t *testing.T) {
	_, err := Int64("id", "42")
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestFloat64_Coercions(t *testing.T) {
	f, err := Float64("rating", 4.5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, f)

	f, err = Float64("rating", 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, f)

	_, err = Float64("rating", "high")
	require.Error(t, err)
}

func TestDecimal_Coercions(t *testing.T) {
	d, err := Decimal("price", 19.99)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(19.99)))

	d, err = Decimal("price", "19.99")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(19.99)))

	d, err = Decimal("price", json.Number("19.99"))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(19.99)))

	_, err = Decimal("price", true)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
