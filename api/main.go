package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qbyten/site-api/internal/auth"
	"github.com/qbyten/site-api/internal/config"
	"github.com/qbyten/site-api/internal/db"
	api "github.com/qbyten/site-api/internal/http"
	"github.com/qbyten/site-api/internal/http/handlers"
	"github.com/qbyten/site-api/internal/redissvc"
	"github.com/qbyten/site-api/internal/repo"
)

// @title qbyten site API
// @version 1.0
// @description Back-office API for products, services, settings and navigation menus.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)
	handlers.SetRegistrationEnabled(cfg.RegistrationEnabled)

	// A missing store is not fatal: the health endpoint still answers and
	// the resource endpoints report 501 until the binding exists.
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Printf("⚠️ store unavailable: %v", err)
	} else {
		defer database.Close()
		if err := db.Migrate(database); err != nil {
			log.Fatalf("❌ %v", err)
		}

		handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
		handlers.SetServiceRepo(repo.NewPostgresServiceRepository(database))
		handlers.SetSettingRepo(repo.NewPostgresSettingRepository(database))
		handlers.SetMenuRepo(repo.NewPostgresMenuRepository(database))
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
		handlers.SetStatsRepo(repo.NewPostgresStatsRepository(database))
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️ redis unavailable, menu cache disabled: %v", err)
		} else {
			defer rdb.Close()
			handlers.SetMenuCache(redissvc.NewMenuCache(rdb, ctx, 5*time.Minute))
		}
	}

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal(err)
	}
}
