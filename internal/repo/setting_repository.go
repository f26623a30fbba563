package repo

import "github.com/qbyten/site-api/internal/models"

// SettingRepository defines the interface for site setting data operations.
type SettingRepository interface {
	GetAll() ([]models.Setting, error)
	GetByKey(key string) (models.Setting, error)
	// Upsert writes the value for key and reports whether a new row was
	// created (true) or an existing one updated (false).
	Upsert(key, value string) (bool, error)
	Delete(key string) error
}
