package handlers

import (
	"github.com/qbyten/site-api/internal/redissvc"
	repo "github.com/qbyten/site-api/internal/repo"
)

var (
	productRepo repo.ProductRepository
	serviceRepo repo.ServiceRepository
	settingRepo repo.SettingRepository
	menuRepo    repo.MenuRepository
	userRepo    repo.UserRepository
	statsRepo   repo.StatsRepository

	menuCache *redissvc.MenuCache

	registrationEnabled bool
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetServiceRepo(r repo.ServiceRepository) {
	serviceRepo = r
}

func SetSettingRepo(r repo.SettingRepository) {
	settingRepo = r
}

func SetMenuRepo(r repo.MenuRepository) {
	menuRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

// SetMenuCache installs the optional Redis-backed menu cache. A nil cache
// is fine; lookups simply always miss.
func SetMenuCache(c *redissvc.MenuCache) {
	menuCache = c
}

// SetRegistrationEnabled opens or closes the admin bootstrap endpoint.
func SetRegistrationEnabled(enabled bool) {
	registrationEnabled = enabled
}
