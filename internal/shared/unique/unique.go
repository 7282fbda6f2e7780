// Package unique implements the ordered uniqueness check that guards
// entity registration. Rules are evaluated in declaration order and the
// first violated rule aborts the whole check, so the caller gets a single
// unambiguous conflict rather than a noisy aggregate.
package unique

import (
	"context"

	"github.com/edumgt/eden-api/internal/shared/apperror"
)

// Rule declares one candidate-unique field.
type Rule struct {
	Field   string
	Message string
	// Exists reports whether the candidate value is already taken.
	// Read-only; must not have side effects.
	Exists func(ctx context.Context) (bool, error)
}

// Check evaluates rules in order, short-circuiting on the first conflict.
// Lookup failures are infrastructure errors, not conflicts.
func Check(ctx context.Context, rules []Rule) error {
	for _, rule := range rules {
		exists, err := rule.Exists(ctx)
		if err != nil {
			return apperror.Internal(err, "uniqueness lookup failed")
		}
		if exists {
			return apperror.Conflict(rule.Field, rule.Message)
		}
	}
	return nil
}
