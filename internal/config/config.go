// Configuration comes from the environment only; .env files are loaded by LoadDotEnvUp.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendMock   = "mock"
	BackendRemote = "remote"

	OverlayMemory = "memory"
	OverlayRedis  = "redis"

	devSigningKey = "wheelboard-local-dev-key"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// ClientTokenExpected is checked against X-Client-Token when non-empty.
	ClientTokenExpected string

	JWTSigningKey string
	JWTAccessTTL  time.Duration

	// BackendMode selects the mockapi.Backend implementation: mock | remote.
	BackendMode   string
	RemoteBaseURL string
	RemoteTimeout time.Duration

	MockRegisterDelay time.Duration
	MockSocialDelay   time.Duration
	MockKYCDelay      time.Duration
	MockJitter        time.Duration

	// OverlayStore selects where per-session overlays live: memory | redis.
	OverlayStore     string
	OverlayTTL       time.Duration
	OverlaySweepSpec string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RateLimitPerSec caps requests per client IP. Needs Redis; 0 disables.
	RateLimitPerSec int
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		AppEnv:              getEnv("APP_ENV", "production"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		ClientTokenExpected: getEnv("CLIENT_TOKEN", ""),
		JWTSigningKey:       getEnv("JWT_SIGNING_KEY", ""),
		JWTAccessTTL:        getDuration("JWT_ACCESS_TTL", 24*time.Hour),

		BackendMode:   strings.ToLower(getEnv("BACKEND_MODE", BackendMock)),
		RemoteBaseURL: getEnv("REMOTE_BASE_URL", ""),
		RemoteTimeout: getDuration("REMOTE_TIMEOUT", 10*time.Second),

		MockRegisterDelay: getDuration("MOCK_REGISTER_DELAY", 1500*time.Millisecond),
		MockSocialDelay:   getDuration("MOCK_SOCIAL_DELAY", 500*time.Millisecond),
		MockKYCDelay:      getDuration("MOCK_KYC_DELAY", 800*time.Millisecond),
		MockJitter:        getDuration("MOCK_JITTER", 0),

		OverlayStore:     strings.ToLower(getEnv("OVERLAY_STORE", OverlayMemory)),
		OverlayTTL:       getDuration("OVERLAY_TTL", 2*time.Hour),
		OverlaySweepSpec: getEnv("OVERLAY_SWEEP_SPEC", "@every 5m"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		RateLimitPerSec: getInt("RATE_LIMIT_PER_SEC", 0),
	}

	switch cfg.BackendMode {
	case BackendMock:
	case BackendRemote:
		if cfg.RemoteBaseURL == "" {
			return Config{}, fmt.Errorf("REMOTE_BASE_URL is required when BACKEND_MODE=remote")
		}
	default:
		return Config{}, fmt.Errorf("invalid BACKEND_MODE %q (allowed: mock, remote)", cfg.BackendMode)
	}

	switch cfg.OverlayStore {
	case OverlayMemory, OverlayRedis:
	default:
		return Config{}, fmt.Errorf("invalid OVERLAY_STORE %q (allowed: memory, redis)", cfg.OverlayStore)
	}

	if cfg.JWTSigningKey == "" {
		if !cfg.IsLocal() {
			return Config{}, fmt.Errorf("JWT_SIGNING_KEY is required")
		}
		cfg.JWTSigningKey = devSigningKey
	}
	return cfg, nil
}

func (c Config) IsLocal() bool { return c.AppEnv == "local" }

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
