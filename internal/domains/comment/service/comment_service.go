package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/edumgt/eden-api/internal/domains/comment"
	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/shared/apperror"
	"github.com/edumgt/eden-api/internal/shared/patch"
)

// commentService implements the comment.Service interface.
type commentService struct {
	repo        comment.Repository
	productRepo product.Repository
	userRepo    user.Repository
}

func NewCommentService(repo comment.Repository, productRepo product.Repository, userRepo user.Repository) comment.Service {
	return &commentService{
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Register creates a comment after checking that both the product and the
// author exist.
func (s *commentService) Register(ctx context.Context, req comment.CommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, apperror.NotFound("productId", "product not found")
		}
		return nil, apperror.Internal(err, "failed to find product")
	}
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NotFound("userId", "user not found")
		}
		return nil, apperror.Internal(err, "failed to find user")
	}

	now := time.Now()
	c := &comment.Comment{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperror.Internal(err, "failed to create comment")
	}
	return c, nil
}

func (s *commentService) FindByProductID(ctx context.Context, productID string) ([]comment.Comment, error) {
	id, err := parseID("productId", productID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.FindByProductID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list comments")
	}
	return comments, nil
}

// PartialUpdate only accepts the comment text itself; authorship and the
// commented product are immutable.
func (s *commentService) PartialUpdate(ctx context.Context, id string, request map[string]interface{}) error {
	commentID, err := parseID("id", id)
	if err != nil {
		return err
	}

	c, err := s.repo.FindByID(ctx, commentID)
	if errors.Is(err, comment.ErrCommentNotFound) {
		return apperror.NotFound("id", "comment not found")
	}
	if err != nil {
		return apperror.Internal(err, "failed to find comment")
	}

	fields := []patch.Field{
		{Name: "comment", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("comment", value)
			if err != nil {
				return err
			}
			c.Comment = v
			return nil
		}},
	}

	if err := patch.Apply(ctx, fields, request); err != nil {
		return err
	}

	if err := apperror.FromValidation(c.Validate()); err != nil {
		return err
	}

	c.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, c); err != nil {
		return apperror.Internal(err, "failed to update comment")
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	commentID, err := parseID("id", id)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			return apperror.NotFound("id", "comment not found")
		}
		return apperror.Internal(err, "failed to find comment")
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return apperror.Internal(err, "failed to delete comment")
	}
	return nil
}

func parseID(field, id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, apperror.Validationf(field, "the '%s' field must be a valid integer, got %q", field, id)
	}
	return n, nil
}
