package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":3000"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Amadeus upstream (client-credentials flow)
	AmadeusBaseURL      string        // ex: https://test.api.amadeus.com
	AmadeusClientID     string        // required
	AmadeusClientSecret string        // required
	UpstreamTimeout     time.Duration // per-request timeout on outbound calls
	TokenMargin         time.Duration // refresh this long before token expiry

	RefdataFile string // optional YAML overlay for airport->city mappings
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("VOYAGO_LISTEN_PORT", ":3000"),
		ShutdownTimeout: mustDuration("VOYAGO_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("VOYAGO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("VOYAGO_PRETTY_LOG", true),

		// Upstream
		AmadeusBaseURL:      getenv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusClientID:     requireEnv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: requireEnv("AMADEUS_CLIENT_SECRET"),
		UpstreamTimeout:     mustDuration("VOYAGO_UPSTREAM_TIMEOUT", 15*time.Second),
		TokenMargin:         mustDuration("VOYAGO_TOKEN_MARGIN", 60*time.Second),

		RefdataFile: getenv("VOYAGO_REFDATA_FILE", ""),
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
