package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TALENTSCAN_CONFIG is set
//  3. env (prefix TALENTSCAN_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TALENTSCAN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TALENTSCAN_ADDR, TALENTSCAN_SNAPSHOT_TTL, ...
	// Map env keys like TALENTSCAN_SNAPSHOT_TTL -> snapshot_ttl (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TALENTSCAN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "talentscan_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.SnapshotTTL <= 0:
		return fmt.Errorf("%w: snapshot_ttl must be positive", ErrInvalidConfig)
	case cfg.MonitorInterval <= 0:
		return fmt.Errorf("%w: monitor_interval must be positive", ErrInvalidConfig)
	case cfg.FetchTimeout <= 0:
		return fmt.Errorf("%w: fetch_timeout must be positive", ErrInvalidConfig)
	case cfg.MaxTopLimit <= 0:
		return fmt.Errorf("%w: max_top_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
