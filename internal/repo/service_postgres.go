package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/qbyten/site-api/internal/models"
)

type PostgresServiceRepository struct {
	db *sql.DB
}

func NewPostgresServiceRepository(db *sql.DB) *PostgresServiceRepository {
	return &PostgresServiceRepository{db: db}
}

func (r *PostgresServiceRepository) Create(s models.Service) (models.Service, error) {
	query := `INSERT INTO services (slug, title, description) VALUES ($1, $2, $3) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, s.Slug, s.Title, s.Description).Scan(&s.ID)
	if isUniqueViolation(err) {
		return models.Service{}, ErrDuplicateSlug
	}
	return s, err
}

func (r *PostgresServiceRepository) GetAll() ([]models.Service, error) {
	query := `SELECT id, slug, title, description FROM services ORDER BY id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.Description); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PostgresServiceRepository) GetByID(id int) (models.Service, error) {
	query := `SELECT id, slug, title, description FROM services WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Service
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Slug, &s.Title, &s.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, ErrServiceNotFound
	}
	return s, err
}

func (r *PostgresServiceRepository) SlugExists(slug string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM services WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *PostgresServiceRepository) Update(s models.Service) (models.Service, error) {
	query := `UPDATE services SET title = $1, description = $2 WHERE id = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, s.Title, s.Description, s.ID)
	if err != nil {
		return models.Service{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (r *PostgresServiceRepository) Delete(id int) error {
	query := `DELETE FROM services WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
