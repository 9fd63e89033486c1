package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "REST_SERVICE_URL", "STORE_DRIVER", "SERVER_READ_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "3000" || cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Console.RestServiceURL != "http://localhost:8080" {
		t.Errorf("unexpected rest service url: %q", cfg.Console.RestServiceURL)
	}
	if cfg.Service.StoreDriver != "postgres" || cfg.Logger.Level != "info" {
		t.Errorf("unexpected defaults: service=%+v logger=%+v", cfg.Service, cfg.Logger)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REST_SERVICE_URL", "http://recs.internal:9000/")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("SERVER_WRITE_TIMEOUT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Console.RestServiceURL != "http://recs.internal:9000" {
		t.Errorf("trailing slash not trimmed: %q", cfg.Console.RestServiceURL)
	}
	if cfg.Service.StoreDriver != "memory" {
		t.Errorf("driver not normalised: %q", cfg.Service.StoreDriver)
	}
	if cfg.Server.WriteTimeout != 5*time.Second {
		t.Errorf("unexpected write timeout: %v", cfg.Server.WriteTimeout)
	}
}
