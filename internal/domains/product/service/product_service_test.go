package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/shared/apperror"
)

// ========================================
// FAKES
// ========================================

type fakeRepo struct {
	products    map[int64]*product.Product
	nextID      int64
	updateCalls int
	lastUpdated *product.Product
}

func newFakeRepo(seed ...*product.Product) *fakeRepo {
	r := &fakeRepo{products: map[int64]*product.Product{}, nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, p *product.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	if p, ok := r.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, product.ErrProductNotFound
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]product.Product, error) {
	products := []product.Product{}
	for _, p := range r.products {
		products = append(products, *p)
	}
	return products, nil
}

func (r *fakeRepo) FindByTitleLike(ctx context.Context, title string) ([]product.Product, error) {
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, p *product.Product) error {
	r.updateCalls++
	r.lastUpdated = p
	if _, ok := r.products[p.ID]; !ok {
		return product.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeUsageTimeRepo struct {
	known map[int64]bool
}

func (r *fakeUsageTimeRepo) FindByID(ctx context.Context, id int64) (*product.UsageTime, error) {
	if r.known[id] {
		return &product.UsageTime{ID: id, Description: "6 months"}, nil
	}
	return nil, product.ErrUsageTimeNotFound
}

type fakeConditionTypeRepo struct {
	known map[int64]bool
}

func (r *fakeConditionTypeRepo) FindByID(ctx context.Context, id int64) (*product.ConditionType, error) {
	if r.known[id] {
		return &product.ConditionType{ID: id, Description: "used"}, nil
	}
	return nil, product.ErrConditionTypeNotFound
}

type fakeUserRepo struct {
	users map[int64]*user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByCPF(ctx context.Context, cpf string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUserName(ctx context.Context, userName string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByCellphone(ctx context.Context, cellphone string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error)     { return nil, nil }
func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error       { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error           { return nil }
func (r *fakeUserRepo) FindFavoriteProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	return nil, nil
}
func (r *fakeUserRepo) AddFavorite(ctx context.Context, userID, productID int64) error    { return nil }
func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, userID, productID int64) error { return nil }

// ========================================
// FIXTURE
// ========================================

type fixture struct {
	repo    *fakeRepo
	service product.Service
}

func newFixture(seed ...*product.Product) *fixture {
	f := &fixture{repo: newFakeRepo(seed...)}
	f.service = NewProductService(
		f.repo,
		&fakeUsageTimeRepo{known: map[int64]bool{1: true, 2: true}},
		&fakeConditionTypeRepo{known: map[int64]bool{1: true, 2: true}},
		&fakeUserRepo{users: map[int64]*user.User{
			5: {ID: 5, Email: "alice@example.com"},
			6: {ID: 6, Email: "bob@example.com"},
		}},
	)
	return f
}

func seededProduct() *product.Product {
	return &product.Product{
		ID:              10,
		UsageTimeID:     1,
		ConditionTypeID: 1,
		UserID:          5,
		Title:           "Old Guitar",
		Description:     "Well kept acoustic guitar",
		Price:           decimal.NewFromInt(100),
		MaxPrice:        decimal.NewFromInt(150),
		SenderZipCode:   "01310100",
	}
}

func validProductRequest() product.ProductRequest {
	return product.ProductRequest{
		UsageTimeID:     1,
		ConditionTypeID: 1,
		Email:           "alice@example.com",
		Title:           "Old Guitar",
		Description:     "Well kept acoustic guitar",
		Price:           decimal.NewFromInt(100),
		MaxPrice:        decimal.NewFromInt(150),
		SenderZipCode:   "01310100",
	}
}

// ========================================
// REGISTRATION
// ========================================

func TestRegister_Success(t *testing.T) {
	f := newFixture()

	p, err := f.service.Register(context.Background(), validProductRequest())
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, int64(5), p.UserID)
}

func TestRegister_UnknownOwnerEmail(t *testing.T) {
	f := newFixture()
	req := validProductRequest()
	req.Email = "ghost@example.com"

	_, err := f.service.Register(context.Background(), req)
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "email", appErr.Field)
}

func TestRegister_UnknownConditionType(t *testing.T) {
	f := newFixture()
	req := validProductRequest()
	req.ConditionTypeID = 99

	_, err := f.service.Register(context.Background(), req)
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "conditionType", appErr.Field)
}

func TestRegister_NonPositivePrice(t *testing.T) {
	f := newFixture()
	req := validProductRequest()
	req.Price = decimal.Zero

	_, err := f.service.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

// ========================================
// PARTIAL UPDATE
// ========================================

func TestPartialUpdate_PatchesPriceOnly(t *testing.T) {
	f := newFixture(seededProduct())

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"price": 19.99,
	})
	require.NoError(t, err)

	require.Equal(t, 1, f.repo.updateCalls)
	updated := f.repo.lastUpdated
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(19.99)), "price should be 19.99, got %s", updated.Price)
	// Everything else is untouched.
	assert.Equal(t, "Old Guitar", updated.Title)
	assert.True(t, updated.MaxPrice.Equal(decimal.NewFromInt(150)))
}

func TestPartialUpdate_AppliesAllRecognizedFields(t *testing.T) {
	f := newFixture(seededProduct())

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"title":  "Vintage Guitar",
		"price":  float64(80),
		"rating": 4.5,
	})
	require.NoError(t, err)

	updated := f.repo.lastUpdated
	assert.Equal(t, "Vintage Guitar", updated.Title)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(80)))
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)
}

func TestPartialUpdate_ResolvesReferences(t *testing.T) {
	f := newFixture(seededProduct())

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"usageTime": float64(2),
		"user":      float64(6),
	})
	require.NoError(t, err)

	updated := f.repo.lastUpdated
	assert.Equal(t, int64(2), updated.UsageTimeID)
	assert.Equal(t, int64(6), updated.UserID)
}

func TestPartialUpdate_UnresolvedReferenceAbortsPatch(t *testing.T) {
	f := newFixture(seededProduct())

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"usageTime": float64(99),
		"title":     "Vintage Guitar",
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "usageTime", appErr.Field)
	assert.Zero(t, f.repo.updateCalls)
}

func TestPartialUpdate_NoRecognizedField(t *testing.T) {
	f := newFixture(seededProduct())

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"createdAt": "2020-01-01",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNoRecognizedField, apperror.KindOf(err))
	assert.Zero(t, f.repo.updateCalls)
}

func TestPartialUpdate_ValidationFailureWritesNothing(t *testing.T) {
	f := newFixture(seededProduct())

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"price": float64(-5),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Zero(t, f.repo.updateCalls)
}

func TestPartialUpdate_UnknownProduct(t *testing.T) {
	f := newFixture()

	err := f.service.PartialUpdate(context.Background(), "10", map[string]interface{}{
		"title": "Vintage Guitar",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

// ========================================
// QUERIES
// ========================================

func TestFindByID_Success(t *testing.T) {
	f := newFixture(seededProduct())

	p, err := f.service.FindByID(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, "Old Guitar", p.Title)
}

func TestFindByID_InvalidID(t *testing.T) {
	f := newFixture()

	_, err := f.service.FindByID(context.Background(), "abc")
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestDelete_UnknownProduct(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), "10")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDelete_Success(t *testing.T) {
	f := newFixture(seededProduct())

	require.NoError(t, f.service.Delete(context.Background(), "10"))

	_, err := f.service.FindByID(context.Background(), "10")
	require.Error(t, err)
}
