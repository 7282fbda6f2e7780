package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/edumgt/eden-api/internal/domains/cart"
	"github.com/edumgt/eden-api/internal/shared/apperror"
)

// cartService implements the cart.Service interface. Carts are created by
// the registration flow and torn down with the owning user, so the only
// business operation left here is the lookup.
type cartService struct {
	repo cart.Repository
}

func NewCartService(repo cart.Repository) cart.Service {
	return &cartService{repo: repo}
}

func (s *cartService) FindByUserID(ctx context.Context, userID string) (*cart.Cart, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, apperror.Validationf("userId", "the 'userId' field must be a valid integer, got %q", userID)
	}

	c, err := s.repo.FindByUserID(ctx, id)
	if errors.Is(err, cart.ErrCartNotFound) {
		return nil, apperror.NotFound("userId", "cart not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find cart")
	}
	return c, nil
}
