package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/edumgt/eden-api/internal/domains/cart"
	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/infrastructure/graph"
	"github.com/edumgt/eden-api/internal/shared/apperror"
	"github.com/edumgt/eden-api/internal/shared/patch"
	"github.com/edumgt/eden-api/internal/shared/unique"
)

// userService implements the user.Service interface.
type userService struct {
	repo        user.Repository
	productRepo product.Repository
	cartRepo    cart.Repository
	hasher      user.Hasher
	signer      user.TokenSigner
	graphClient graph.Client
}

// NewUserService creates the service instance.
func NewUserService(
	repo user.Repository,
	productRepo product.Repository,
	cartRepo cart.Repository,
	hasher user.Hasher,
	signer user.TokenSigner,
	graphClient graph.Client,
) user.Service {
	return &userService{
		repo:        repo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		hasher:      hasher,
		signer:      signer,
		graphClient: graphClient,
	}
}

// ========================================
// REGISTRATION
// ========================================

// Register creates a new user account.
// Flow: uniqueness check -> hash credential -> persist -> create cart ->
// best-effort graph mirror.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// Ordered uniqueness rules; evaluation stops at the first conflict.
	if err := unique.Check(ctx, s.uniquenessRules(req)); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.Internal(err, "failed to hash password")
	}

	now := time.Now()
	newUser := &user.User{
		Name:         req.Name,
		CPF:          req.CPF,
		Email:        req.Email,
		UserName:     req.UserName,
		PasswordHash: passwordHash,
		Cellphone:    stringPtr(req.Cellphone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Single commit point. A concurrent registration racing past the checks
	// above surfaces here through the table's unique constraints.
	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrUserDuplicate) {
			return nil, apperror.Conflict("user", "user is already registered")
		}
		return nil, apperror.Internal(err, "failed to create user")
	}

	newCart := &cart.Cart{UserID: newUser.ID, CreatedAt: now}
	if err := s.cartRepo.Create(ctx, newCart); err != nil {
		return nil, apperror.Internal(err, "failed to create cart")
	}

	// Mirror the identity into the graph service. Identity creation is
	// authoritative locally; propagation is eventual, so every failure
	// here is logged and swallowed.
	if err := s.graphClient.CreateUser(ctx, graph.CreateUserRequest{
		UserID:   newUser.ID,
		UserName: newUser.Name,
	}); err != nil {
		log.Error().Err(err).Int64("user_id", newUser.ID).Msg("[GRAPH CLIENT] failed to mirror user")
	}

	resp := newUser.ToResponse(&newCart.ID)
	return &resp, nil
}

// uniquenessRules declares the fixed conflict-priority order:
// cpf -> email -> userName -> cellphone (only when present).
func (s *userService) uniquenessRules(req user.RegisterRequest) []unique.Rule {
	rules := []unique.Rule{
		{Field: "cpf", Message: user.MsgCPFRegistered, Exists: s.existsBy(func(ctx context.Context) (*user.User, error) {
			return s.repo.FindByCPF(ctx, req.CPF)
		})},
		{Field: "email", Message: user.MsgEmailRegistered, Exists: s.existsBy(func(ctx context.Context) (*user.User, error) {
			return s.repo.FindByEmail(ctx, req.Email)
		})},
		{Field: "userName", Message: user.MsgUserNameRegistered, Exists: s.existsBy(func(ctx context.Context) (*user.User, error) {
			return s.repo.FindByUserName(ctx, req.UserName)
		})},
	}
	if req.Cellphone != "" {
		rules = append(rules, unique.Rule{
			Field: "cellphone", Message: user.MsgCellphoneRegistered, Exists: s.existsBy(func(ctx context.Context) (*user.User, error) {
				return s.repo.FindByCellphone(ctx, req.Cellphone)
			}),
		})
	}
	return rules
}

// existsBy adapts a lookup into the boolean form the uniqueness checker
// expects, treating "not found" as "value free".
func (s *userService) existsBy(find func(ctx context.Context) (*user.User, error)) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		_, err := find(ctx)
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}

// ========================================
// TOKEN ISSUANCE
// ========================================

// Token issues a token for an already-known subject without re-checking a
// secret. The subject must resolve, otherwise the issuance fails.
func (s *userService) Token(ctx context.Context, req user.TokenRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	u, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

// Login verifies the credential against the stored hash before issuing.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	u, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(req.Password, u.PasswordHash) {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	return s.issueToken(u)
}

func (s *userService) findByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, apperror.NotFound("email", "email is not registered")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find user")
	}
	return u, nil
}

// issueToken signs a token whose subject is the user's email. A signing
// failure is an infrastructure fault, not a business one.
func (s *userService) issueToken(u *user.User) (*user.TokenResponse, error) {
	token, err := s.signer.Generate(u.Email)
	if err != nil {
		return nil, apperror.Internal(err, "failed to generate token")
	}
	return &user.TokenResponse{Token: token}, nil
}

// ========================================
// PARTIAL UPDATE
// ========================================

// PartialUpdate applies a merge-patch to a user. Every recognized key in
// the request is applied; the mutated entity is then re-validated before
// the single persistence write.
func (s *userService) PartialUpdate(ctx context.Context, id string, request map[string]interface{}) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return apperror.NotFound("id", "user not found")
	}
	if err != nil {
		return apperror.Internal(err, "failed to find user")
	}

	fields := []patch.Field{
		{Name: "name", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("name", value)
			if err != nil {
				return err
			}
			u.Name = v
			return nil
		}},
		{Name: "userName", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("userName", value)
			if err != nil {
				return err
			}
			u.UserName = v
			return nil
		}},
		{Name: "password", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("password", value)
			if err != nil {
				return err
			}
			if len(v) < 8 {
				return apperror.Validationf("password", "the 'password' field must have at least 8 characters")
			}
			hash, err := s.hasher.Hash(v)
			if err != nil {
				return apperror.Internal(err, "failed to hash password")
			}
			u.PasswordHash = hash
			return nil
		}},
		{Name: "cellphone", Apply: func(ctx context.Context, value interface{}) error {
			v, err := patch.String("cellphone", value)
			if err != nil {
				return err
			}
			u.Cellphone = &v
			return nil
		}},
	}

	if err := patch.Apply(ctx, fields, request); err != nil {
		return err
	}

	if err := apperror.FromValidation(u.Validate()); err != nil {
		return err
	}

	u.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, user.ErrUserDuplicate) {
			return apperror.Conflict("userName", user.MsgUserNameRegistered)
		}
		return apperror.Internal(err, "failed to update user")
	}
	return nil
}

// ========================================
// QUERIES
// ========================================

func (s *userService) FindAll(ctx context.Context) ([]user.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list users")
	}
	return users, nil
}

// FindByParameter fetches a user by the first valid parameter, in priority
// order id -> cpf -> email.
func (s *userService) FindByParameter(ctx context.Context, id, cpf, email string) (*user.UserResponse, error) {
	var u *user.User
	var err error

	switch {
	case id != "":
		userID, perr := parseID(id)
		if perr != nil {
			return nil, perr
		}
		u, err = s.repo.FindByID(ctx, userID)
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NotFound("id", "id is not registered")
		}
	case cpf != "":
		u, err = s.repo.FindByCPF(ctx, cpf)
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NotFound("cpf", "cpf is not registered")
		}
	case email != "":
		u, err = s.repo.FindByEmail(ctx, email)
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NotFound("email", "email is not registered")
		}
	default:
		return nil, apperror.NoRecognizedField()
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find user")
	}

	var cartID *int64
	if c, cerr := s.cartRepo.FindByUserID(ctx, u.ID); cerr == nil {
		cartID = &c.ID
	}

	resp := u.ToResponse(cartID)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return apperror.NotFound("id", "user not found")
		}
		return apperror.Internal(err, "failed to delete user")
	}
	return nil
}

// ========================================
// FAVORITES
// ========================================

func (s *userService) Favorites(ctx context.Context, userID string) ([]product.Product, error) {
	id, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, apperror.NotFound("userId", "user not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find user")
	}

	productIDs, err := s.repo.FindFavoriteProductIDs(ctx, u.ID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list favorites")
	}

	products := make([]product.Product, 0, len(productIDs))
	for _, pid := range productIDs {
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			// A dangling favorite is a data integrity problem, not a
			// client fault.
			return nil, apperror.Internal(err, "favorite product not found, contact support")
		}
		products = append(products, *p)
	}
	return products, nil
}

func (s *userService) RegisterFavorite(ctx context.Context, req user.RegisterFavoriteRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	u, err := s.repo.FindByID(ctx, req.UserID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, apperror.NotFound("userId", "user not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find user")
	}

	p, err := s.productRepo.FindByID(ctx, req.ProductID)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, apperror.NotFound("productId", "product not found")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to find product")
	}

	if err := s.repo.AddFavorite(ctx, u.ID, p.ID); err != nil {
		return nil, apperror.Internal(err, "failed to register favorite")
	}

	resp := u.ToResponse(nil)
	return &resp, nil
}

func (s *userService) DeleteFavorite(ctx context.Context, userID, productID string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	pid, err := parseID(productID)
	if err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, uid)
	if errors.Is(err, user.ErrUserNotFound) {
		return apperror.NotFound("userId", "user not found")
	}
	if err != nil {
		return apperror.Internal(err, "failed to find user")
	}

	if err := s.repo.RemoveFavorite(ctx, u.ID, pid); err != nil {
		return apperror.Internal(err, "failed to delete favorite")
	}
	return nil
}

// ========================================
// HELPERS
// ========================================

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, apperror.Validationf("id", "the 'id' field must be a valid integer, got %q", id)
	}
	return n, nil
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
