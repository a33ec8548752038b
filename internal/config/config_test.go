package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn default", cfg.LogLevel)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SKILLCERT_PINATA_JWT", "jwt-1")
	t.Setenv("SKILLCERT_MINT_RELAY_URL", "https://relay.example")
	t.Setenv("SKILLCERT_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.PinataJWT != "jwt-1" {
		t.Errorf("jwt = %q", cfg.PinataJWT)
	}
	if cfg.MintRelayURL != "https://relay.example" {
		t.Errorf("relay = %q", cfg.MintRelayURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("level = %q", cfg.LogLevel)
	}
}

func TestNewLoggerBadLevelFallsBack(t *testing.T) {
	log, err := NewLogger("shouty")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if log == nil {
		t.Fatal("expected logger")
	}
}
