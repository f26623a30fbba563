package repo

import (
	"github.com/qbyten/site-api/internal/models"
)

// InMemoryServiceRepository is an in-memory implementation of ServiceRepository.
type InMemoryServiceRepository struct {
	services []models.Service
	nextID   int
}

func NewInMemoryServiceRepository() *InMemoryServiceRepository {
	return &InMemoryServiceRepository{
		services: []models.Service{},
		nextID:   1,
	}
}

func (r *InMemoryServiceRepository) Create(s models.Service) (models.Service, error) {
	for _, existing := range r.services {
		if existing.Slug == s.Slug {
			return models.Service{}, ErrDuplicateSlug
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.services = append(r.services, s)
	return s, nil
}

func (r *InMemoryServiceRepository) GetAll() ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for i := len(r.services) - 1; i >= 0; i-- {
		out = append(out, r.services[i])
	}
	return out, nil
}

func (r *InMemoryServiceRepository) GetByID(id int) (models.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, ErrServiceNotFound
}

func (r *InMemoryServiceRepository) SlugExists(slug string) (bool, error) {
	for _, s := range r.services {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryServiceRepository) Update(s models.Service) (models.Service, error) {
	for i, existing := range r.services {
		if existing.ID == s.ID {
			s.Slug = existing.Slug
			r.services[i] = s
			return s, nil
		}
	}
	return models.Service{}, ErrServiceNotFound
}

func (r *InMemoryServiceRepository) Delete(id int) error {
	for i, s := range r.services {
		if s.ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return ErrServiceNotFound
}

func (r *InMemoryServiceRepository) Clear() {
	r.services = []models.Service{}
	r.nextID = 1
}

func (r *InMemoryServiceRepository) Count() int {
	return len(r.services)
}
