package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerAddr  string
	DatabaseURL string
	// RedisAddr is optional; empty disables the menu cache.
	RedisAddr string
	JWTSecret string
	TokenTTL  time.Duration
	// RegistrationEnabled gates the one-time admin bootstrap endpoint. Keep
	// it off once the first admin exists.
	RegistrationEnabled bool
}

// Load reads configuration from the environment with sane defaults.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "168h")
	v.SetDefault("REGISTRATION_ENABLED", false)

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		ServerAddr:          v.GetString("SERVER_ADDR"),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		TokenTTL:            ttl,
		RegistrationEnabled: v.GetBool("REGISTRATION_ENABLED"),
	}, nil
}
