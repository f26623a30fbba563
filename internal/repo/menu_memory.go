package repo

import (
	"sort"
	"time"

	"github.com/qbyten/site-api/internal/models"
)

// InMemoryMenuRepository is an in-memory implementation of MenuRepository.
type InMemoryMenuRepository struct {
	menus  []models.Menu
	nextID int
}

func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		menus:  []models.Menu{},
		nextID: 1,
	}
}

func (r *InMemoryMenuRepository) Create(m models.Menu) (models.Menu, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	m.ID = r.nextID
	m.CreatedAt = now
	m.UpdatedAt = now
	r.nextID++
	r.menus = append(r.menus, m)
	return m, nil
}

func (r *InMemoryMenuRepository) GetAll() ([]models.Menu, error) {
	out := make([]models.Menu, len(r.menus))
	copy(out, r.menus)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *InMemoryMenuRepository) GetByID(id int) (models.Menu, error) {
	for _, m := range r.menus {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Menu{}, ErrMenuNotFound
}

func (r *InMemoryMenuRepository) Exists(id int) (bool, error) {
	for _, m := range r.menus {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryMenuRepository) Update(m models.Menu) error {
	for i, existing := range r.menus {
		if existing.ID == m.ID {
			m.CreatedAt = existing.CreatedAt
			m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			r.menus[i] = m
			return nil
		}
	}
	// no existence check on update: missing ids are a silent no-op
	return nil
}

func (r *InMemoryMenuRepository) Delete(id int) error {
	if ok, _ := r.Exists(id); !ok {
		return ErrMenuNotFound
	}

	// cascade: collect the subtree transitively, then drop it in one pass
	doomed := map[int]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, m := range r.menus {
			if m.ParentID != nil && doomed[*m.ParentID] && !doomed[m.ID] {
				doomed[m.ID] = true
				changed = true
			}
		}
	}

	kept := r.menus[:0]
	for _, m := range r.menus {
		if !doomed[m.ID] {
			kept = append(kept, m)
		}
	}
	r.menus = kept
	return nil
}

func (r *InMemoryMenuRepository) Clear() {
	r.menus = []models.Menu{}
	r.nextID = 1
}

func (r *InMemoryMenuRepository) Count() int {
	return len(r.menus)
}
