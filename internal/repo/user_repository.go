package repo

import "github.com/qbyten/site-api/internal/models"

// UserRepository defines the interface for admin user data operations.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(user models.User) (models.User, error)
}
