package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumgt/eden-api/internal/domains/card"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) card.Repository {
	return &postgresRepository{pool: pool}
}

const cardColumns = `pk_id, fk_user_id, card_number, holder_name, expiration_date, security_code, created_at`

func (r *postgresRepository) Create(ctx context.Context, c *card.Card) error {
	query := `
		INSERT INTO cards (fk_user_id, card_number, holder_name, expiration_date, security_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING pk_id
	`

	err := r.pool.QueryRow(ctx, query,
		c.UserID, c.CardNumber, c.HolderName, c.ExpirationDate, c.SecurityCode, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*card.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards WHERE pk_id = $1`, cardColumns)

	var c card.Card
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.CardNumber, &c.HolderName, &c.ExpirationDate, &c.SecurityCode, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, card.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID int64) ([]card.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards WHERE fk_user_id = $1 ORDER BY pk_id`, cardColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := []card.Card{}
	for rows.Next() {
		var c card.Card
		err := rows.Scan(&c.ID, &c.UserID, &c.CardNumber, &c.HolderName, &c.ExpirationDate, &c.SecurityCode, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return cards, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE pk_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if result.RowsAffected() == 0 {
		return card.ErrCardNotFound
	}
	return nil
}
