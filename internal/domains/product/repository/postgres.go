package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/edumgt/eden-api/internal/domains/product"
	"github.com/edumgt/eden-api/pkg/cache"
	"github.com/edumgt/eden-api/pkg/logger"
)

const productCacheTTL = 10 * time.Minute

// postgresRepository - Raw SQL with pgxpool, cache-aside on single lookups
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) product.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Prices travel as text so the numeric columns round-trip through
// shopspring decimals without precision loss.
const productColumns = `pk_id, fk_usage_time_id, fk_condition_type_id, fk_user_id,
	title, description, price::text, max_price::text, sender_zip_code, rating,
	created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			fk_usage_time_id, fk_condition_type_id, fk_user_id,
			title, description, price, max_price, sender_zip_code, rating,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8, $9, $10, $11)
		RETURNING pk_id
	`

	err := r.pool.QueryRow(ctx, query,
		p.UsageTimeID, p.ConditionTypeID, p.UserID,
		p.Title, p.Description, p.Price.String(), p.MaxPrice.String(), p.SenderZipCode, p.Rating,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	cacheKey := productCacheKey(id)

	var cached product.Product
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE pk_id = $1`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, p, productCacheTTL); err != nil {
		logger.Warn("failed to cache product", map[string]interface{}{
			"key":   cacheKey,
			"error": err.Error(),
		})
	}
	return p, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]product.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY pk_id`, productColumns)
	return r.queryMany(ctx, query)
}

func (r *postgresRepository) FindByTitleLike(ctx context.Context, title string) ([]product.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE title ILIKE $1 ORDER BY pk_id`, productColumns)
	return r.queryMany(ctx, query, "%"+title+"%")
}

func (r *postgresRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET fk_usage_time_id = $1, fk_condition_type_id = $2, fk_user_id = $3,
		    title = $4, description = $5, price = $6::numeric, max_price = $7::numeric,
		    sender_zip_code = $8, rating = $9, updated_at = $10
		WHERE pk_id = $11
	`

	result, err := r.pool.Exec(ctx, query,
		p.UsageTimeID, p.ConditionTypeID, p.UserID,
		p.Title, p.Description, p.Price.String(), p.MaxPrice.String(),
		p.SenderZipCode, p.Rating, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	r.invalidate(ctx, p.ID)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE pk_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// ========================================
// HELPERS
// ========================================

func (r *postgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []product.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		p        product.Product
		price    string
		maxPrice string
	)
	err := row.Scan(
		&p.ID, &p.UsageTimeID, &p.ConditionTypeID, &p.UserID,
		&p.Title, &p.Description, &price, &maxPrice, &p.SenderZipCode, &p.Rating,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", price, err)
	}
	if p.MaxPrice, err = decimal.NewFromString(maxPrice); err != nil {
		return nil, fmt.Errorf("invalid max price %q: %w", maxPrice, err)
	}
	return &p, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, productCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate product cache", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
	}
}

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
