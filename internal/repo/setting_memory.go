package repo

import (
	"sort"
	"time"

	"github.com/qbyten/site-api/internal/models"
)

// InMemorySettingRepository is an in-memory implementation of SettingRepository.
type InMemorySettingRepository struct {
	settings map[string]models.Setting
}

func NewInMemorySettingRepository() *InMemorySettingRepository {
	return &InMemorySettingRepository{
		settings: map[string]models.Setting{},
	}
}

func (r *InMemorySettingRepository) GetAll() ([]models.Setting, error) {
	keys := make([]string, 0, len(r.settings))
	for k := range r.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.settings[k])
	}
	return out, nil
}

func (r *InMemorySettingRepository) GetByKey(key string) (models.Setting, error) {
	s, ok := r.settings[key]
	if !ok {
		return models.Setting{}, ErrSettingNotFound
	}
	return s, nil
}

func (r *InMemorySettingRepository) Upsert(key, value string) (bool, error) {
	_, exists := r.settings[key]
	r.settings[key] = models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return !exists, nil
}

func (r *InMemorySettingRepository) Delete(key string) error {
	if _, ok := r.settings[key]; !ok {
		return ErrSettingNotFound
	}
	delete(r.settings, key)
	return nil
}

func (r *InMemorySettingRepository) Clear() {
	r.settings = map[string]models.Setting{}
}

func (r *InMemorySettingRepository) Count() int {
	return len(r.settings)
}
