package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		CORS
		Global
		Env Env
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		AccessSecret      string
		RefreshSecret     string
		AccessTokenTTL    time.Duration
		RefreshTokenTTL   time.Duration
		BcryptCost        int
		MinPasswordLength int
		SecureCookies     bool // HTTPS-only refresh cookie, forced on in production
	}
	CORS struct {
		AllowedOrigins []string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// IsProduction reports whether the server runs in production mode.
// Controls cookie security attributes and error verbosity.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func NewConfig() *Config {
	// Load .env if present, matching local development workflow. Real env vars win.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("env", "development")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("jwt_access_secret_key", "")
	v.SetDefault("jwt_refresh_secret_key", "")
	v.SetDefault("access_token_ttl", "15m")
	v.SetDefault("refresh_token_ttl", "720h") // 30 days
	v.SetDefault("bcrypt_cost", 12)
	v.SetDefault("min_password_length", 8)
	v.SetDefault("secure_cookies", false)

	// CORS defaults mirror the deployed frontends
	v.SetDefault("cors_allowed_origins", "http://localhost:8080,http://localhost:3000,https://spndy.xyz")

	env := Env(v.GetString("ENV"))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			AccessSecret:      v.GetString("JWT_ACCESS_SECRET_KEY"),
			RefreshSecret:     v.GetString("JWT_REFRESH_SECRET_KEY"),
			AccessTokenTTL:    v.GetDuration("ACCESS_TOKEN_TTL"),
			RefreshTokenTTL:   v.GetDuration("REFRESH_TOKEN_TTL"),
			BcryptCost:        v.GetInt("BCRYPT_COST"),
			MinPasswordLength: v.GetInt("MIN_PASSWORD_LENGTH"),
			SecureCookies:     v.GetBool("SECURE_COOKIES") || env == EnvProduction,
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Env: env,
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
