package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

const couponColumns = `id, code, discount_percentage, expiration_date, is_active, user_id, created_at, updated_at`

// PostgresCouponRepository implements CouponRepository using PostgreSQL
type PostgresCouponRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCouponRepository creates a new PostgresCouponRepository
func NewPostgresCouponRepository(pool *pgxpool.Pool) *PostgresCouponRepository {
	return &PostgresCouponRepository{pool: pool}
}

// GetActiveByUserID retrieves the user's active coupon
func (r *PostgresCouponRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE user_id = $1 AND is_active`
	return r.scanCoupon(r.pool.QueryRow(ctx, query, userID))
}

// GetByCodeAndUserID retrieves an active coupon by code for a user
func (r *PostgresCouponRepository) GetByCodeAndUserID(ctx context.Context, code string, userID uuid.UUID) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1 AND user_id = $2 AND is_active`
	return r.scanCoupon(r.pool.QueryRow(ctx, query, code, userID))
}

// Deactivate marks a coupon inactive
func (r *PostgresCouponRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE coupons SET is_active = FALSE, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Replace deletes the user's existing coupon and inserts a new one.
// Runs in a transaction so the unique user_id constraint never trips.
func (r *PostgresCouponRepository) Replace(ctx context.Context, coupon *domain.Coupon) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM coupons WHERE user_id = $1`, coupon.UserID); err != nil {
		return err
	}

	query := `
		INSERT INTO coupons (id, code, discount_percentage, expiration_date, is_active, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.DiscountPercentage,
		coupon.ExpirationDate,
		coupon.IsActive,
		coupon.UserID,
		coupon.CreatedAt,
		coupon.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresCouponRepository) scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	coupon := &domain.Coupon{}
	err := row.Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountPercentage,
		&coupon.ExpirationDate,
		&coupon.IsActive,
		&coupon.UserID,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return coupon, nil
}
