package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

type LogCfg struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	// Empty means info.
	Level string `yaml:"level"`

	// ZerologLevel is derived from Level during initialization.
	// It is not read from YAML.
	ZerologLevel zerolog.Level `yaml:"-"` // virtual: computed during init
}

func (cfg *LogCfg) adjust() error {
	if cfg.Level == "" {
		cfg.Level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parse level %q: %w", cfg.Level, err)
	}
	cfg.ZerologLevel = lvl
	return nil
}
