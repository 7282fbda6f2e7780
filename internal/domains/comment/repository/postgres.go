package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumgt/eden-api/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = `pk_id, fk_product_id, fk_user_id, comment, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (fk_product_id, fk_user_id, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING pk_id
	`

	err := r.pool.QueryRow(ctx, query,
		c.ProductID, c.UserID, c.Comment, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE pk_id = $1`, commentColumns)

	var c comment.Comment
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ProductID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

func (r *postgresRepository) FindByProductID(ctx context.Context, productID int64) ([]comment.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE fk_product_id = $1 ORDER BY created_at DESC`, commentColumns)

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []comment.Comment{}
	for rows.Next() {
		var c comment.Comment
		err := rows.Scan(&c.ID, &c.ProductID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return comments, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *comment.Comment) error {
	query := `UPDATE comments SET comment = $1, updated_at = $2 WHERE pk_id = $3`

	result, err := r.pool.Exec(ctx, query, c.Comment, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE pk_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}
