package unique

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumgt/eden-api/internal/shared/apperror"
)

func rule(field, message string, exists bool, err error, evaluated *[]string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Exists: func(ctx context.Context) (bool, error) {
			*evaluated = append(*evaluated, field)
			return exists, err
		},
	}
}

func TestCheck_AllFree(t *testing.T) {
	evaluated := []string{}
	rules := []Rule{
		rule("cpf", "cpf is already registered", false, nil, &evaluated),
		rule("email", "email is already registered", false, nil, &evaluated),
	}

	err := Check(context.Background(), rules)
	require.NoError(t, err)
	assert.Equal(t, []string{"cpf", "email"}, evaluated)
}

func TestCheck_FirstConflictWins(t *testing.T) {
	// Both values are taken; only the first rule's conflict is reported
	// and later rules are never evaluated.
	evaluated := []string{}
	rules := []Rule{
		rule("cpf", "cpf is already registered", true, nil, &evaluated),
		rule("email", "email is already registered", true, nil, &evaluated),
	}

	err := Check(context.Background(), rules)
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindConflict, appErr.Kind)
	assert.Equal(t, "cpf", appErr.Field)
	assert.Equal(t, "cpf is already registered", appErr.Message)
	assert.Equal(t, []string{"cpf"}, evaluated)
}

func TestCheck_ConflictOnLaterRule(t *testing.T) {
	evaluated := []string{}
	rules := []Rule{
		rule("cpf", "cpf is already registered", false, nil, &evaluated),
		rule("email", "email is already registered", true, nil, &evaluated),
	}

	err := Check(context.Background(), rules)
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email", appErr.Field)
	assert.Equal(t, []string{"cpf", "email"}, evaluated)
}

func TestCheck_LookupFailureIsInternal(t *testing.T) {
	evaluated := []string{}
	boom := errors.New("connection refused")
	rules := []Rule{
		rule("cpf", "cpf is already registered", false, boom, &evaluated),
		rule("email", "email is already registered", true, nil, &evaluated),
	}

	err := Check(context.Background(), rules)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"cpf"}, evaluated)
}

func TestCheck_NoRules(t *testing.T) {
	require.NoError(t, Check(context.Background(), nil))
}
