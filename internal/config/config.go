package config

import (
	"os"
	"strconv"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is
// unset. It is public knowledge, so any deployment still running with it
// has forgeable sessions.
const DefaultJWTSecret = "your-secret-key-change-this-in-production"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	RootDomain  string
	Env         string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// The JWT secret default exists for local development only; deployments
// must set JWT_SECRET.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/profilehub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		RootDomain:  getEnv("ROOT_DOMAIN", "localhost"),
		Env:         getEnv("APP_ENV", "development"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// UsesDefaultJWTSecret reports whether the signing key is still the
// built-in development default.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// IsProduction reports whether the process runs in production mode.
// Session cookies are marked Secure only when this is true.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
