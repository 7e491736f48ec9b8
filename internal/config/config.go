package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

type Config struct {
	Env    string
	Port   string
	AppURL string

	RedisURL  string
	RedisPass string
	RedisDB   int

	JWTSecret string

	QuickAuthDomain    string
	QuickAuthIssuer    string
	QuickAuthPublicKey string

	RPCURL          string
	ContractAddress string
	ContractABIPath string
	PrivateKey      string

	GameBackend               string
	DisplayPlatformFeePercent uint64
	LocalEntryFee             string
	LocalTimeLimit            time.Duration
	WatchInterval             time.Duration

	FarcasterHeader    string
	FarcasterPayload   string
	FarcasterSignature string

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:    getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),
		AppURL: strings.TrimRight(getEnv("APP_URL", "http://localhost:3000"), "/"),

		RedisURL:  getEnv("REDIS_URL", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		JWTSecret: getEnv("JWT_SECRET", ""),

		QuickAuthDomain:    getEnv("QUICK_AUTH_DOMAIN", ""),
		QuickAuthIssuer:    getEnv("QUICK_AUTH_ISSUER", "https://auth.farcaster.xyz"),
		QuickAuthPublicKey: getEnv("QUICK_AUTH_PUBLIC_KEY", ""),

		RPCURL:          getEnv("RPC_URL", ""),
		ContractAddress: getEnv("CONTRACT_ADDRESS", ""),
		ContractABIPath: getEnv("CONTRACT_ABI_PATH", ""),
		PrivateKey:      getEnv("PRIVATE_KEY", ""),

		GameBackend:               strings.ToLower(getEnv("GAME_BACKEND", BackendRemote)),
		DisplayPlatformFeePercent: getEnvAsUint("DISPLAY_PLATFORM_FEE_PERCENT", 5),
		LocalEntryFee:             getEnv("LOCAL_ENTRY_FEE", "0.001"),
		LocalTimeLimit:            getEnvAsDuration("LOCAL_TIME_LIMIT", 30*time.Second),
		WatchInterval:             getEnvAsDuration("WATCH_INTERVAL", 15*time.Second),

		FarcasterHeader:    getEnv("FARCASTER_HEADER", ""),
		FarcasterPayload:   getEnv("FARCASTER_PAYLOAD", ""),
		FarcasterSignature: getEnv("FARCASTER_SIGNATURE", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = "dev-secret-change-me"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.GameBackend {
	case BackendRemote, BackendLocal:
	default:
		return fmt.Errorf("invalid GAME_BACKEND %q: want %q or %q", c.GameBackend, BackendRemote, BackendLocal)
	}

	if c.DisplayPlatformFeePercent > 100 {
		return fmt.Errorf("DISPLAY_PLATFORM_FEE_PERCENT must be at most 100, got %d", c.DisplayPlatformFeePercent)
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if c.LocalTimeLimit <= 0 {
		return errors.New("LOCAL_TIME_LIMIT must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
