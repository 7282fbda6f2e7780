package service

import (
	"context"
	"errors"

	"github.com/edumgt/eden-api/internal/domains/cart"
	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/internal/domains/user"
	"github.com/edumgt/eden-api/internal/infrastructure/graph"
)

// fakeUserRepo is an in-memory user.Repository recording writes.
type fakeUserRepo struct {
	users     map[int64]*user.User
	favorites map[int64][]int64
	nextID    int64

	created     []*user.User
	updateCalls int
	createErr   error
	updateErr   error
}

func newFakeUserRepo(seed ...*user.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:     map[int64]*user.User{},
		favorites: map[int64][]int64{},
		nextID:    1,
	}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByCPF(ctx context.Context, cpf string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool { return u.CPF == cpf })
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByUserName(ctx context.Context, userName string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool { return u.UserName == userName })
}

func (r *fakeUserRepo) FindByCellphone(ctx context.Context, cellphone string) (*user.User, error) {
	return r.findBy(func(u *user.User) bool {
		return u.Cellphone != nil && *u.Cellphone == cellphone
	})
}

func (r *fakeUserRepo) findBy(match func(*user.User) bool) (*user.User, error) {
	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]user.User, error) {
	users := []user.User{}
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindFavoriteProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.favorites[userID], nil
}

func (r *fakeUserRepo) AddFavorite(ctx context.Context, userID, productID int64) error {
	r.favorites[userID] = append(r.favorites[userID], productID)
	return nil
}

func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	kept := []int64{}
	for _, id := range r.favorites[userID] {
		if id != productID {
			kept = append(kept, id)
		}
	}
	r.favorites[userID] = kept
	return nil
}

// fakeProductRepo only serves lookups; writes are not exercised here.
type fakeProductRepo struct {
	products map[int64]*product.Product
}

func newFakeProductRepo(seed ...*product.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]*product.Product{}}
	for _, p := range seed {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error { return nil }

func (r *fakeProductRepo) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, product.ErrProductNotFound
}

func (r *fakeProductRepo) FindAll(ctx context.Context) ([]product.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindByTitleLike(ctx context.Context, title string) ([]product.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error           { return nil }

// fakeCartRepo records cart creation.
type fakeCartRepo struct {
	carts     map[int64]*cart.Cart
	nextID    int64
	createErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[int64]*cart.Cart{}, nextID: 100}
}

func (r *fakeCartRepo) Create(ctx context.Context, c *cart.Cart) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = r.nextID
	r.nextID++
	r.carts[c.UserID] = c
	return nil
}

func (r *fakeCartRepo) FindByUserID(ctx context.Context, userID int64) (*cart.Cart, error) {
	if c, ok := r.carts[userID]; ok {
		return c, nil
	}
	return nil, cart.ErrCartNotFound
}

func (r *fakeCartRepo) Delete(ctx context.Context, id int64) error { return nil }

// fakeHasher is a transparent stand-in for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Matches(plaintext, hash string) bool   { return hash == "hashed:"+plaintext }

// fakeSigner issues predictable tokens.
type fakeSigner struct {
	err error
}

func (s fakeSigner) Generate(subject string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for:" + subject, nil
}

// fakeGraphClient records mirror calls and can be told to fail.
type fakeGraphClient struct {
	createCalls []graph.CreateUserRequest
	createErr   error
}

func (g *fakeGraphClient) CreateUser(ctx context.Context, req graph.CreateUserRequest) error {
	g.createCalls = append(g.createCalls, req)
	return g.createErr
}

func (g *fakeGraphClient) DeleteUser(ctx context.Context, userID int64) error { return nil }

var errInfra = errors.New("infrastructure down")
