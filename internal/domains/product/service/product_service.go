package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/shared/apperror"
	"github.com/edumgt/eden-api/internal/shared/patch"
)

// productService implements the product.Service interface.
type productService struct {
	repo              product.Repository
	usageTimeRepo     product.UsageTimeRepository
	conditionTypeRepo product.ConditionTypeRepository
	userRepo          user.Repository
}

// NewProductService creates the service instance.
func NewProductService(
	repo product.Repository,
	usageTimeRepo product.UsageTimeRepository,
	conditionTypeRepo product.ConditionTypeRepository,
	userRepo user.Repository,
) product.Service {
	return &productService{
		repo:              repo,
		usageTimeRepo:     usageTimeRepo,
		conditionTypeRepo: conditionTypeRepo,
		userRepo:          userRepo,
	}
}

// Register creates a new listing. All three references must resolve before
// anything is written.
func (s *productService) Register(ctx context.Context, req product.ProductRequest) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	conditionType, err := s.resolveConditionType(ctx, req.ConditionTypeID)
	if err != nil {
		return nil, err
	}
	usageTime, err := s.resolveUsageTime(ctx, req.UsageTimeID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, apperror.NotFound("email", "user not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find user")
	}

	now := time.Now()
	p := &product.Product{
		UsageTimeID:     usageTime.ID,
		ConditionTypeID: conditionType.ID,
		UserID:          owner.ID,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		MaxPrice:        req.MaxPrice,
		SenderZipCode:   req.SenderZipCode,
		Rating:          req.Rating,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperror.Internal(err, "failed to create product")
	}
	return p, nil
}

// PartialUpdate applies a merge-patch to a product. Reference fields
// (usageTime, conditionType, user) are resolved before being applied; a
// missing reference aborts the whole patch. Every recognized key present
// in the request is applied, then the mutated entity is re-validated and
// persisted in a single write.
func (s *productService) PartialUpdate(ctx context.Context, id string, request map[string]interface{}) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}

	p, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, product.ErrProductNotFound) {
		return apperror.NotFound("id", "product not found")
	}
	if err != nil {
		return apperror.Internal(err, "failed to find product")
	}

	fields := []patch.Field{
		{Name: "usageTime", Apply: func(ctx context.Context, value interface{}) error {
			refID, err := patch.Int64("usageTime", value)
			if err != nil {
				return err
			}
			usageTime, err := s.resolveUsageTime(ctx, refID)
			if err != nil {
				return err
			}
			p.UsageTimeID = usageTime.ID
			return nil
		}},
		{Name: "conditionType", Apply: func(ctx context.Context, value interface{}) error {
			refID, err := patch.Int64("conditionType", value)
			if err != nil {
				return err
			}
			conditionType, err := s.resolveConditionType(ctx, refID)
			if err != nil {
				return err
			}
			p.ConditionTypeID = conditionType.ID
			return nil
		}},
		{Name: "user", Apply: func(ctx context.Context, value interface{}) error {
			refID, err := patch.Int64("user", value)
			if err != nil {
				return err
			}
			owner, err := s.userRepo.FindByID(ctx, refID)
			if errors.Is(err, user.ErrUserNotFound) {
				return apperror.NotFound("user", "user not found")
			}
			if err != nil {
				return apperror.Internal(err, "failed to find user")
			}
			p.UserID = owner.ID
			return nil
		}},
		{Name: "title", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("title", value)
			if err != nil {
				return err
			}
			p.Title = v
			return nil
		}},
		{Name: "description", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("description", value)
			if err != nil {
				return err
			}
			p.Description = v
			return nil
		}},
		{Name: "price", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.Decimal("price", value)
			if err != nil {
				return err
			}
			p.Price = v
			return nil
		}},
		{Name: "maxPrice", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.Decimal("maxPrice", value)
			if err != nil {
				return err
			}
			p.MaxPrice = v
			return nil
		}},
		{Name: "senderZipCode", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("senderZipCode", value)
			if err != nil {
				return err
			}
			p.SenderZipCode = v
			return nil
		}},
		{Name: "rating", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.Float64("rating", value)
			if err != nil {
				return err
			}
			p.Rating = &v
			return nil
		}},
	}

	if err := patch.Apply(ctx, fields, request); err != nil {
		return err
	}

	if err := apperror.FromValidation(p.Validate()); err != nil {
		return err
	}

	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return apperror.Internal(err, "failed to update product")
	}
	return nil
}

// ========================================
// QUERIES
// ========================================

func (s *productService) FindAll(ctx context.Context) ([]product.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list products")
	}
	return products, nil
}

func (s *productService) FindByID(ctx context.Context, id string) (*product.Product, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, apperror.NotFound("id", "product not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find product")
	}
	return p, nil
}

func (s *productService) FindByTitleLike(ctx context.Context, title string) ([]product.Product, error) {
	products, err := s.repo.FindByTitleLike(ctx, title)
	if err != nil {
		return nil, apperror.Internal(err, "failed to search products")
	}
	return products, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}

	// Verify existence first so a missing product is a client fault.
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return apperror.NotFound("id", "product not found")
		}
		return apperror.Internal(err, "failed to find product")
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		return apperror.Internal(err, "failed to delete product")
	}
	return nil
}

// ========================================
// REFERENCE RESOLUTION
// ========================================

func (s *productService) resolveUsageTime(ctx context.Context, id int64) (*product.UsageTime, error) {
	usageTime, err := s.usageTimeRepo.FindByID(ctx, id)
	if errors.Is(err, product.ErrUsageTimeNotFound) {
		return nil, apperror.NotFound("usageTime", "usage time not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find usage time")
	}
	return usageTime, nil
}

func (s *productService) resolveConditionType(ctx context.Context, id int64) (*product.ConditionType, error) {
	conditionType, err := s.conditionTypeRepo.FindByID(ctx, id)
	if errors.Is(err, product.ErrConditionTypeNotFound) {
		return nil, apperror.NotFound("conditionType", "condition type not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find condition type")
	}
	return conditionType, nil
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, apperror.Validationf("id", "the 'id' field must be a valid integer, got %q", id)
	}
	return n, nil
}
