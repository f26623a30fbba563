package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var one int
	return r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}

// Counts best-efforts each table; a failing count leaves that field at zero.
func (r *PostgresStatsRepository) Counts() (RecordCounts, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c RecordCounts
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&c.Products)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&c.Services)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&c.Settings)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM navigation_menus`).Scan(&c.Menus)
	return c, nil
}
