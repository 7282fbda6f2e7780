package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edumgt/eden-api/internal/domains/product"
)

// The lookup tables are seeded by migration and read-only at runtime.

type usageTimeRepository struct {
	pool *pgxpool.Pool
}

func NewUsageTimeRepository(pool *pgxpool.Pool) product.UsageTimeRepository {
	return &usageTimeRepository{pool: pool}
}

func (r *usageTimeRepository) FindByID(ctx context.Context, id int64) (*product.UsageTime, error) {
	var ut product.UsageTime
	err := r.pool.QueryRow(ctx,
		`SELECT pk_id, description FROM usage_times WHERE pk_id = $1`, id,
	).Scan(&ut.ID, &ut.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, product.ErrUsageTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usage time: %w", err)
	}
	return &ut, nil
}

type conditionTypeRepository struct {
	pool *pgxpool.Pool
}

func NewConditionTypeRepository(pool *pgxpool.Pool) product.ConditionTypeRepository {
	return &conditionTypeRepository{pool: pool}
}

func (r *conditionTypeRepository) FindByID(ctx context.Context, id int64) (*product.ConditionType, error) {
	var ct product.ConditionType
	err := r.pool.QueryRow(ctx,
		`SELECT pk_id, description FROM condition_types WHERE pk_id = $1`, id,
	).Scan(&ct.ID, &ct.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, product.ErrConditionTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get condition type: %w", err)
	}
	return &ct, nil
}
