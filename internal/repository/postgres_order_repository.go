package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// Create inserts a new order. The unique constraint on stripe_session_id
// makes repeated confirmations of the same session a no-op.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	productsJSON, err := json.Marshal(order.Products)
	if err != nil {
		return fmt.Errorf("failed to marshal order products: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, products, total_amount, stripe_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stripe_session_id) DO NOTHING
	`
	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.UserID,
		productsJSON,
		order.TotalAmount,
		order.StripeSessionID,
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

// GetBySessionID retrieves an order by its checkout session ID
func (r *PostgresOrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	query := `
		SELECT id, user_id, products, total_amount, stripe_session_id, created_at, updated_at
		FROM orders
		WHERE stripe_session_id = $1
	`
	order := &domain.Order{}
	var productsJSON []byte
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&order.ID,
		&order.UserID,
		&productsJSON,
		&order.TotalAmount,
		&order.StripeSessionID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if len(productsJSON) > 0 {
		if err := json.Unmarshal(productsJSON, &order.Products); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order products: %w", err)
		}
	}
	return order, nil
}
