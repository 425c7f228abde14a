package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "PORT", "DATABASE_URL", "MAX_RESULTS", "AMADEUS_CLIENT_ID", "AMADEUS_CLIENT_SECRET", "AMADEUS_BASE_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.MaxResults != 3 || cfg.Env != "production" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Amadeus.BaseURL != "https://test.api.amadeus.com" {
		t.Errorf("base url = %q", cfg.Amadeus.BaseURL)
	}
	if cfg.Amadeus.Configured() {
		t.Error("credentials should not be configured")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AMADEUS_CLIENT_ID", " id ")
	t.Setenv("AMADEUS_CLIENT_SECRET", "secret")
	t.Setenv("MAX_RESULTS", "5")
	t.Setenv("DATABASE_URL", "postgres://localhost/visa")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Amadeus.Configured() || cfg.Amadeus.ClientID != "id" {
		t.Fatalf("amadeus = %+v", cfg.Amadeus)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("max results = %d, want 5", cfg.MaxResults)
	}
	if cfg.DatabaseURL != "postgres://localhost/visa" {
		t.Errorf("database url = %q", cfg.DatabaseURL)
	}
}

func TestLoadRejectsBadMaxResults(t *testing.T) {
	for _, v := range []string{"zero", "0", "1000"} {
		t.Setenv("MAX_RESULTS", v)
		if _, err := Load(); err == nil {
			t.Errorf("MAX_RESULTS=%q: expected error", v)
		}
	}
}
