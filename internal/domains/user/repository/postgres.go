package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumgt/eden-api/internal/domains/user"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `pk_id, name, cpf, email, user_name, password, cellphone, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, cpf, email, user_name, password, cellphone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING pk_id
	`

	err := r.pool.QueryRow(ctx, query,
		u.Name, u.CPF, u.Email, u.UserName, u.PasswordHash, u.Cellphone,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return user.ErrUserDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// ========================================
// LOOKUPS
// ========================================

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findBy(ctx, "pk_id = $1", id)
}

func (r *postgresRepository) FindByCPF(ctx context.Context, cpf string) (*user.User, error) {
	return r.findBy(ctx, "cpf = $1", cpf)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findBy(ctx, "email = $1", email)
}

func (r *postgresRepository) FindByUserName(ctx context.Context, userName string) (*user.User, error) {
	return r.findBy(ctx, "user_name = $1", userName)
}

func (r *postgresRepository) FindByCellphone(ctx context.Context, cellphone string) (*user.User, error) {
	return r.findBy(ctx, "cellphone = $1", cellphone)
}

func (r *postgresRepository) findBy(ctx context.Context, condition string, arg interface{}) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s`, userColumns, condition)

	var u user.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.CPF, &u.Email, &u.UserName, &u.PasswordHash, &u.Cellphone,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY pk_id`, userColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.CPF, &u.Email, &u.UserName, &u.PasswordHash, &u.Cellphone,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET name = $1, user_name = $2, password = $3, cellphone = $4, updated_at = $5
		WHERE pk_id = $6
	`

	result, err := r.pool.Exec(ctx, query,
		u.Name, u.UserName, u.PasswordHash, u.Cellphone, u.UpdatedAt, u.ID,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return user.ErrUserDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE pk_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ========================================
// FAVORITES
// ========================================

func (r *postgresRepository) FindFavoriteProductIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT fk_product_id FROM favorites WHERE fk_user_id = $1 ORDER BY fk_product_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) AddFavorite(ctx context.Context, userID, productID int64) error {
	// ON CONFLICT keeps the operation idempotent.
	query := `
		INSERT INTO favorites (fk_user_id, fk_product_id)
		VALUES ($1, $2)
		ON CONFLICT (fk_user_id, fk_product_id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *postgresRepository) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	query := `DELETE FROM favorites WHERE fk_user_id = $1 AND fk_product_id = $2`
	if _, err := r.pool.Exec(ctx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
