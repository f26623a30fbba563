package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/qbyten/site-api/internal/models"
)

type PostgresMenuRepository struct {
	db *sql.DB
}

func NewPostgresMenuRepository(db *sql.DB) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db}
}

func (r *PostgresMenuRepository) Create(m models.Menu) (models.Menu, error) {
	query := `INSERT INTO navigation_menus (title, url, parent_id, sort_order, is_active, target, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now()) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		m.Title, m.URL, m.ParentID, m.SortOrder, m.IsActive, m.Target, m.Icon).Scan(&m.ID)
	return m, err
}

func (r *PostgresMenuRepository) GetAll() ([]models.Menu, error) {
	query := `SELECT id, title, url, parent_id, sort_order, is_active, target, icon, created_at::text, updated_at::text
		FROM navigation_menus ORDER BY sort_order ASC, id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []models.Menu
	for rows.Next() {
		var m models.Menu
		if err := rows.Scan(&m.ID, &m.Title, &m.URL, &m.ParentID, &m.SortOrder,
			&m.IsActive, &m.Target, &m.Icon, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func (r *PostgresMenuRepository) GetByID(id int) (models.Menu, error) {
	query := `SELECT id, title, url, parent_id, sort_order, is_active, target, icon, created_at::text, updated_at::text
		FROM navigation_menus WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m models.Menu
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.URL, &m.ParentID,
		&m.SortOrder, &m.IsActive, &m.Target, &m.Icon, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Menu{}, ErrMenuNotFound
	}
	return m, err
}

func (r *PostgresMenuRepository) Exists(id int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM navigation_menus WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresMenuRepository) Update(m models.Menu) error {
	query := `UPDATE navigation_menus
		SET title = $1, url = $2, parent_id = $3, sort_order = $4, is_active = $5, target = $6, icon = $7, updated_at = now()
		WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query,
		m.Title, m.URL, m.ParentID, m.SortOrder, m.IsActive, m.Target, m.Icon, m.ID)
	return err
}

// Delete removes the row; the parent_id foreign key carries ON DELETE
// CASCADE, so the whole subtree goes with it at any depth.
func (r *PostgresMenuRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM navigation_menus WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}
