package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RuslanKralin/e-commerce-store/internal/domain"
)

// PostgresAnalyticsRepository implements AnalyticsRepository using PostgreSQL
type PostgresAnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAnalyticsRepository creates a new PostgresAnalyticsRepository
func NewPostgresAnalyticsRepository(pool *pgxpool.Pool) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{pool: pool}
}

// Summary aggregates user, product and order totals in one round trip
func (r *PostgresAnalyticsRepository) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders)
	`
	summary := &domain.AnalyticsSummary{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&summary.Users,
		&summary.Products,
		&summary.TotalSales,
		&summary.TotalRevenue,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
