package repo

import "github.com/qbyten/site-api/internal/models"

// ServiceRepository defines the interface for service data operations.
type ServiceRepository interface {
	Create(service models.Service) (models.Service, error)
	GetAll() ([]models.Service, error)
	GetByID(id int) (models.Service, error)
	SlugExists(slug string) (bool, error)
	Update(service models.Service) (models.Service, error)
	Delete(id int) error
}
