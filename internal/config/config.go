package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for the external certification anchors.
// LLM provider settings are handled separately by the llm package.
type Config struct {
	// PinataJWT authenticates against the metadata pinning service.
	// Empty disables pinning; certifications stay unverified.
	PinataJWT string `env:"SKILLCERT_PINATA_JWT"`

	// MintRelayURL is the badge mint relay endpoint. Empty disables
	// minting.
	MintRelayURL string `env:"SKILLCERT_MINT_RELAY_URL"`

	// MintRelayKey authenticates against the mint relay.
	MintRelayKey string `env:"SKILLCERT_MINT_RELAY_KEY"`

	// LogLevel controls the external-client logger: debug, info, warn
	// or error.
	LogLevel string `env:"SKILLCERT_LOG_LEVEL" envDefault:"warn"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
