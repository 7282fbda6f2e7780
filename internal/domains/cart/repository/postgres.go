package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumgt/eden-api/internal/domains/cart"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) cart.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *cart.Cart) error {
	query := `
		INSERT INTO carts (fk_user_id, created_at)
		VALUES ($1, $2)
		RETURNING pk_id
	`

	err := r.pool.QueryRow(ctx, query, c.UserID, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert cart: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID int64) (*cart.Cart, error) {
	var c cart.Cart
	err := r.pool.QueryRow(ctx,
		`SELECT pk_id, fk_user_id, created_at FROM carts WHERE fk_user_id = $1`, userID,
	).Scan(&c.ID, &c.UserID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, cart.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE pk_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if result.RowsAffected() == 0 {
		return cart.ErrCartNotFound
	}
	return nil
}
