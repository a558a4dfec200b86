// Package config exposes environment-driven configuration for Tattvam.
//
// Values come from the process environment, with a .env file merged in
// first (via godotenv) so local development needs no exported variables.
// The JWT signing secret deliberately has no default: the server refuses
// to start without one.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort     = "8080"
	defaultAppEnv      = "local"
	defaultTokenTTLMin = 1440 // 24 hours
	defaultRateLimit   = 200
	defaultRateWindow  = time.Minute
)

// ErrNoSecret is returned by Validate when JWT_SECRET is unset.
var ErrNoSecret = errors.New("config: JWT_SECRET must be set (no default is provided)")

var loadOnce sync.Once

// Load merges a .env file (if present) into the process environment.
// Existing environment variables win over .env entries.
func Load() {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// Validate checks that required configuration is present.
// Call it once at startup before serving.
func Validate() error {
	Load()
	if JWTSecret() == "" {
		return ErrNoSecret
	}
	return nil
}

func get(key, fallback string) string {
	Load()
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// AppPort returns the HTTP listen port.
func AppPort() string { return get("APP_PORT", defaultAppPort) }

// AppEnv returns the deployment environment ("local", "production", ...).
func AppEnv() string { return get("APP_ENV", defaultAppEnv) }

// JWTSecret returns the token signing secret. Empty when unconfigured.
func JWTSecret() string { return get("JWT_SECRET", "") }

// TokenTTL returns how long issued access tokens stay valid.
func TokenTTL() time.Duration {
	n, err := strconv.Atoi(get("TOKEN_TTL_MINUTES", ""))
	if err != nil || n <= 0 {
		n = defaultTokenTTLMin
	}
	return time.Duration(n) * time.Minute
}

// RateLimit returns the per-IP request budget per rate window.
func RateLimit() int {
	n, err := strconv.Atoi(get("RATE_LIMIT", ""))
	if err != nil || n <= 0 {
		return defaultRateLimit
	}
	return n
}

// RateWindow returns the rate limiter window.
func RateWindow() time.Duration {
	n, err := strconv.Atoi(get("RATE_WINDOW_SECONDS", ""))
	if err != nil || n <= 0 {
		return defaultRateWindow
	}
	return time.Duration(n) * time.Second
}

// CORSOrigins returns the allowed CORS origins (comma-separated env value).
func CORSOrigins() []string {
	raw := get("CORS_ORIGINS", "*")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// AdminEmail returns the seed admin account email ("" disables seeding).
func AdminEmail() string { return get("ADMIN_EMAIL", "") }

// AdminPassword returns the seed admin account password.
func AdminPassword() string { return get("ADMIN_PASSWORD", "") }

// MaxBodyBytes returns the request body size limit (default 4 MB).
func MaxBodyBytes() int64 {
	n, err := strconv.ParseInt(get("MAX_BODY_BYTES", ""), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20
	}
	return n
}
