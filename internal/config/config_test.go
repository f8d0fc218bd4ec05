package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default http addr: %q", cfg.HTTPAddr)
	}
	if cfg.TrailingWindowDays != 7 {
		t.Fatalf("unexpected default trailing window: %d", cfg.TrailingWindowDays)
	}
	if cfg.LeadingWindowDays != 14 {
		t.Fatalf("unexpected default leading window: %d", cfg.LeadingWindowDays)
	}
	if cfg.LiveWindow != 2*time.Hour {
		t.Fatalf("unexpected default live window: %s", cfg.LiveWindow)
	}
	if cfg.ScrapeInterval != 30*time.Second {
		t.Fatalf("unexpected default ingest interval: %s", cfg.ScrapeInterval)
	}
	if cfg.CompetitionNameByCode["eng.1"] != "Premier League" {
		t.Fatalf("unexpected default competition map: %+v", cfg.CompetitionNameByCode)
	}
}

func TestLoad_CompetitionMapParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("custom map", func(t *testing.T) {
		t.Setenv("COMPETITION_MAP", " usa.1:MLS , mex.1:Liga MX ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CompetitionNameByCode) != 2 {
			t.Fatalf("unexpected competition map size: %d", len(cfg.CompetitionNameByCode))
		}
		if cfg.CompetitionNameByCode["usa.1"] != "MLS" {
			t.Fatalf("unexpected competition name: %q", cfg.CompetitionNameByCode["usa.1"])
		}
	})

	t.Run("missing name", func(t *testing.T) {
		t.Setenv("COMPETITION_MAP", "usa.1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for map item without name")
		}
	})

	t.Run("empty code", func(t *testing.T) {
		t.Setenv("COMPETITION_MAP", ":MLS")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for map item without code")
		}
	})
}

func TestLoad_IngestWindowValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("negative trailing window", func(t *testing.T) {
		t.Setenv("INGEST_TRAILING_WINDOW_DAYS", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative trailing window")
		}
	})

	t.Run("invalid live window", func(t *testing.T) {
		t.Setenv("INGEST_TRAILING_WINDOW_DAYS", "7")
		t.Setenv("INGEST_LIVE_WINDOW", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid live window")
		}
	})

	t.Run("zero interval", func(t *testing.T) {
		t.Setenv("INGEST_LIVE_WINDOW", "2h")
		t.Setenv("INGEST_INTERVAL", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero ingest interval")
		}
	})
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_ScoreboardConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ScoreboardTimeout != 10*time.Second {
			t.Fatalf("unexpected default scoreboard timeout: %s", cfg.ScoreboardTimeout)
		}
		if !cfg.ScoreboardCircuitEnabled {
			t.Fatalf("expected circuit enabled by default")
		}
		if cfg.ScoreboardMaxRetries != 1 {
			t.Fatalf("unexpected default max retries: %d", cfg.ScoreboardMaxRetries)
		}
	})

	t.Run("invalid retries", func(t *testing.T) {
		t.Setenv("SCOREBOARD_MAX_RETRIES", "-2")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative retries")
		}
	})

	t.Run("invalid circuit threshold", func(t *testing.T) {
		t.Setenv("SCOREBOARD_MAX_RETRIES", "1")
		t.Setenv("SCOREBOARD_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero circuit failure count")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 30*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}
