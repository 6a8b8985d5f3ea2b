package config

import (
	"log"
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	ADDRESS           HTTP bind address (e.g. ":8080")
//	DATABASE_DSN      PostgreSQL DSN
//	JWT_SECRET        token signing secret
//	ACCESS_TOKEN_TTL  access token lifetime (Go duration, e.g. "1h")
//	CORS_ORIGIN       allowed CORS origin
func parseEnv(config *Config) {
	config.Address = getEnv("ADDRESS", config.Address)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.JWTSecret = getEnv("JWT_SECRET", config.JWTSecret)
	config.CORSOrigin = getEnv("CORS_ORIGIN", config.CORSOrigin)

	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("ignoring invalid ACCESS_TOKEN_TTL %q: %v", v, err)
			return
		}
		config.AccessTokenValidity = d
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
