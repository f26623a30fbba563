package repo

import "github.com/qbyten/site-api/internal/models"

// MenuRepository defines the interface for navigation menu data operations.
// GetAll returns rows ordered by (sort_order, id); the nested tree is a
// derived view built by the caller.
type MenuRepository interface {
	Create(menu models.Menu) (models.Menu, error)
	GetAll() ([]models.Menu, error)
	GetByID(id int) (models.Menu, error)
	Exists(id int) (bool, error)
	// Update overwrites every mutable field. Updating an id that does not
	// exist is a no-op, not an error.
	Update(menu models.Menu) error
	// Delete removes the row and its whole subtree.
	Delete(id int) error
}
