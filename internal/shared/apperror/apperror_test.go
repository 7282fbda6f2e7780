package apperror

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValidation_Nil(t *testing.T) {
	assert.NoError(t, FromValidation(nil))
}

func TestFromValidation_AggregatesAllViolations(t *testing.T) {
	verrs := validation.Errors{
		"name": errors.New("the 'name' field must be passed"),
		"cpf":  errors.New("the 'cpf' field must have exactly 11 digits"),
	}

	err := FromValidation(verrs)
	require.Error(t, err)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindValidation, appErr.Kind)
	require.Len(t, appErr.Violations, 2)

	// Violations are ordered by field name for a deterministic message.
	assert.Equal(t, "cpf", appErr.Violations[0].Field)
	assert.Equal(t, "name", appErr.Violations[1].Field)
	assert.Equal(t,
		"validation errors: cpf: the 'cpf' field must have exactly 11 digits; name: the 'name' field must be passed",
		appErr.Message)
}

func TestFromValidation_NonOzzoError(t *testing.T) {
	err := FromValidation(errors.New("boom"))
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestKindOf_UnclassifiedIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestAs_WrapsUnclassified(t *testing.T) {
	appErr := As(errors.New("boom"))
	require.NotNil(t, appErr)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, "internal server error", appErr.Message)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause, "failed to find user")
	assert.ErrorIs(t, err, cause)
}

func TestError_MessageIncludesField(t *testing.T) {
	err := Conflict("cpf", "cpf is already registered")
	assert.Equal(t, "cpf: cpf is already registered", err.Error())
}
