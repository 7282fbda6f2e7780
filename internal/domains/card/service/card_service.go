package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/edumgt/eden-api/internal/domains/card"
	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/shared/apperror"
)

// cardService implements the card.Service interface. Card data is only ever
// returned in masked form.
type cardService struct {
	repo     card.Repository
	userRepo user.Repository
}

func NewCardService(repo card.Repository, userRepo user.Repository) card.Service {
	return &cardService{repo: repo, userRepo: userRepo}
}

func (s *cardService) Register(ctx context.Context, req card.CardRequest) (*card.CardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NotFound("userId", "user not found")
		}
		return nil, apperror.Internal(err, "failed to find user")
	}

	c := &card.Card{
		UserID:         req.UserID,
		CardNumber:     req.CardNumber,
		HolderName:     req.HolderName,
		ExpirationDate: req.ExpirationDate,
		SecurityCode:   req.SecurityCode,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperror.Internal(err, "failed to create card")
	}

	resp := c.ToResponse()
	return &resp, nil
}

func (s *cardService) FindByUserID(ctx context.Context, userID string) ([]card.CardResponse, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, apperror.Validationf("userId", "the 'userId' field must be a valid integer, got %q", userID)
	}

	cards, err := s.repo.FindByUserID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list cards")
	}

	responses := make([]card.CardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, cards[i].ToResponse())
	}
	return responses, nil
}

func (s *cardService) Delete(ctx context.Context, id string) error {
	cardID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return apperror.Validationf("id", "the 'id' field must be a valid integer, got %q", id)
	}

	if _, err := s.repo.FindByID(ctx, cardID); err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return apperror.NotFound("id", "card not found")
		}
		return apperror.Internal(err, "failed to find card")
	}

	if err := s.repo.Delete(ctx, cardID); err != nil {
		return apperror.Internal(err, "failed to delete card")
	}
	return nil
}
