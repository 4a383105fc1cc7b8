package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultJWTSecret signs session tokens when JWT_SECRET is unset. It is only
// accepted when APP_ENV is dev.
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	JWTSecret            string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	CORSOrigins          []string

	DefaultLanguage string
	VendorName      string
	NodeID          int64
	HistoryLimit    int
	CheckoutWorkers int
}

// Load reads the environment. A .env file in the working directory is applied
// first when present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 8081),

		JWTSecret:            getEnv("JWT_SECRET", DefaultJWTSecret),
		SessionTTL:           getEnvDuration("SESSION_TTL", 12*time.Hour),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		CORSOrigins:          getEnvList("CORS_ORIGINS", []string{"*"}),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		VendorName:      getEnv("VENDOR_NAME", "Vendor Dashboard"),
		NodeID:          int64(getEnvInt("NODE_ID", 1)),
		HistoryLimit:    getEnvInt("HISTORY_LIMIT", 50),
		CheckoutWorkers: getEnvInt("CHECKOUT_CONCURRENCY", 10),
	}
}

// Validate reports settings that are unsafe for the configured environment.
func (c Config) Validate() error {
	if c.AppEnv != "dev" && c.JWTSecret == DefaultJWTSecret {
		return fmt.Errorf("%w: JWT_SECRET must be set when APP_ENV is %q", ErrInvalidConfig, c.AppEnv)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
