package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	FreeQueryLimit    int
	HistoryLimit      int
	QueryMaxChars     int
	ProcessingDelayMS int
	TelemetrySeed     int64
	SessionTTLMinutes int

	APIRateLimitRPS      int
	APIRateLimitBurst    int
	APIMaxConcurrent     int
	APIOverloadTimeoutMS int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		FreeQueryLimit:    mustEnvInt("FREE_QUERY_LIMIT", 5),
		HistoryLimit:      mustEnvInt("HISTORY_LIMIT", 10),
		QueryMaxChars:     mustEnvInt("QUERY_MAX_CHARS", 1000),
		ProcessingDelayMS: mustEnvInt("PROCESSING_DELAY_MS", 2800),
		TelemetrySeed:     mustEnvInt64("TELEMETRY_SEED", 0),
		SessionTTLMinutes: mustEnvInt("SESSION_TTL_MINUTES", 120),

		APIRateLimitRPS:      mustEnvInt("API_RATE_LIMIT_RPS", 10),
		APIRateLimitBurst:    mustEnvInt("API_RATE_LIMIT_BURST", 20),
		APIMaxConcurrent:     mustEnvInt("API_MAX_CONCURRENT", 64),
		APIOverloadTimeoutMS: mustEnvInt("API_OVERLOAD_TIMEOUT_MS", 200),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
