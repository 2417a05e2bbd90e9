package config

import "testing"

func TestLoadIncludesAssistantDefaults(t *testing.T) {
	t.Setenv("FREE_QUERY_LIMIT", "")
	t.Setenv("HISTORY_LIMIT", "")
	t.Setenv("QUERY_MAX_CHARS", "")
	t.Setenv("PROCESSING_DELAY_MS", "")
	t.Setenv("TELEMETRY_SEED", "")

	cfg := Load()
	if cfg.FreeQueryLimit != 5 {
		t.Fatalf("expected default free query limit 5, got %d", cfg.FreeQueryLimit)
	}
	if cfg.HistoryLimit != 10 {
		t.Fatalf("expected default history limit 10, got %d", cfg.HistoryLimit)
	}
	if cfg.QueryMaxChars != 1000 {
		t.Fatalf("expected default query max chars 1000, got %d", cfg.QueryMaxChars)
	}
	if cfg.ProcessingDelayMS != 2800 {
		t.Fatalf("expected default processing delay 2800ms, got %d", cfg.ProcessingDelayMS)
	}
	if cfg.TelemetrySeed != 0 {
		t.Fatalf("expected default telemetry seed 0, got %d", cfg.TelemetrySeed)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("FREE_QUERY_LIMIT", "3")
	t.Setenv("PROCESSING_DELAY_MS", "0")
	t.Setenv("TELEMETRY_SEED", "1234")
	t.Setenv("API_RATE_LIMIT_RPS", "2")

	cfg := Load()
	if cfg.FreeQueryLimit != 3 {
		t.Fatalf("expected free query limit 3, got %d", cfg.FreeQueryLimit)
	}
	if cfg.ProcessingDelayMS != 0 {
		t.Fatalf("expected processing delay 0, got %d", cfg.ProcessingDelayMS)
	}
	if cfg.TelemetrySeed != 1234 {
		t.Fatalf("expected telemetry seed 1234, got %d", cfg.TelemetrySeed)
	}
	if cfg.APIRateLimitRPS != 2 {
		t.Fatalf("expected rate limit rps 2, got %d", cfg.APIRateLimitRPS)
	}
}

func TestLoadFallsBackOnMalformedNumbers(t *testing.T) {
	t.Setenv("FREE_QUERY_LIMIT", "not-a-number")
	t.Setenv("TELEMETRY_SEED", "also-not")

	cfg := Load()
	if cfg.FreeQueryLimit != 5 {
		t.Fatalf("expected fallback free query limit 5, got %d", cfg.FreeQueryLimit)
	}
	if cfg.TelemetrySeed != 0 {
		t.Fatalf("expected fallback telemetry seed 0, got %d", cfg.TelemetrySeed)
	}
}
