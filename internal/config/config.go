package config

import "os"

// DevJWTSecret is the fallback signing key used when JWT_SECRET is unset.
// It exists so the server can boot in local development; see README before
// deploying anywhere real.
const DevJWTSecret = "smartcards-dev-secret-do-not-use-in-prod"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

type AuthConfig struct {
	JWTSecret    string
	JWTAccessTTL string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8000"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Auth: AuthConfig{
			JWTSecret:    getenv("JWT_SECRET", DevJWTSecret),
			JWTAccessTTL: getenv("JWT_ACCESS_TTL", "60m"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

// UsesDevSecret reports whether the process is running on the built-in
// development signing key.
func (c AuthConfig) UsesDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
