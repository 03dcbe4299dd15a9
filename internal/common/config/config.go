package config

import (
	"os"
	"time"

	"github.com/AlibekovAA/feedboard/backend/internal/common/constants"
)

type Config struct {
	HTTPPort          string
	CORSAllowedOrigin string
	LogDir            string
	LogLevel          string
	SeedAdminLogin    string
	SeedAdminPassword string
	RequestTimeout    time.Duration
}

// Load reads the environment. Every key has a default, so loading never fails.
func Load() Config {
	return Config{
		HTTPPort:          getEnv("PORT", constants.DefaultHTTPPort),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", constants.DefaultCORSAllowedOrigin),
		LogDir:            getEnv("LOG_DIR", constants.DefaultLogDir),
		LogLevel:          getEnv("LOG_LEVEL", constants.DefaultLogLevel),
		SeedAdminLogin:    getEnv("SEED_ADMIN_LOGIN", constants.DefaultSeedAdminLogin),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", constants.DefaultSeedAdminPassword),
		RequestTimeout:    getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
