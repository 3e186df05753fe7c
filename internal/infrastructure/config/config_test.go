package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_BASE_URL", "ESHIPZ_TOKEN", "LOG_LEVEL", "LOG_PRETTY", "OPS_ADDR"} {
		t.Setenv(key, "") // register restore, then clear for real
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.APIBaseURL != "https://app.eshipz.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.LogPretty {
		t.Error("LogPretty should default to false")
	}
	if cfg.OpsAddr != "" {
		t.Errorf("OpsAddr = %q, want empty (disabled)", cfg.OpsAddr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://staging.eshipz.test")
	t.Setenv("ESHIPZ_TOKEN", "tok-123")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("OPS_ADDR", "127.0.0.1:9464")

	cfg := Load()

	if cfg.APIBaseURL != "https://staging.eshipz.test" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Token != "tok-123" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.LogLevel != "debug" || !cfg.LogPretty {
		t.Errorf("logging config = %q/%v", cfg.LogLevel, cfg.LogPretty)
	}
	if cfg.OpsAddr != "127.0.0.1:9464" {
		t.Errorf("OpsAddr = %q", cfg.OpsAddr)
	}
}
