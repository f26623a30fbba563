package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qbyten/site-api/internal/http/handlers"
)

// NewRouter builds the full API surface behind the CORS/auth gate.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/api/health", handlers.HealthHandler)

	r.Get("/api/products", handlers.GetProductsHandler)
	r.Post("/api/products", handlers.CreateProductHandler)
	r.Put("/api/products", handlers.UpdateProductHandler)
	r.Delete("/api/products", handlers.DeleteProductHandler)

	r.Get("/api/services", handlers.GetServicesHandler)
	r.Post("/api/services", handlers.CreateServiceHandler)
	r.Put("/api/services", handlers.UpdateServiceHandler)
	r.Delete("/api/services", handlers.DeleteServiceHandler)

	r.Get("/api/settings", handlers.GetSettingsHandler)
	r.Post("/api/settings", handlers.UpsertSettingHandler)
	r.Put("/api/settings", handlers.UpsertSettingHandler)
	r.Delete("/api/settings", handlers.DeleteSettingHandler)

	r.Get("/api/menus", handlers.GetMenusHandler)
	r.Post("/api/menus", handlers.CreateMenuHandler)
	r.Put("/api/menus", handlers.UpdateMenuHandler)
	r.Delete("/api/menus", handlers.DeleteMenuHandler)

	r.Post("/api/auth/login", handlers.LoginHandler)
	r.Post("/api/auth/register", handlers.RegisterHandler)
	r.Get("/api/auth/verify", handlers.VerifyHandler)

	return AuthGate(r)
}
