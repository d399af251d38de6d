package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config groups the configuration of the engine and its optional subsystems.
// A subsystem configured by a pointer section is disabled by leaving it nil.
type Config struct {
	Engine EngineCfg `yaml:"engine"`

	// Telemetry configures periodic logging of engine counters.
	// If nil, no telemetry goroutine is started.
	Telemetry *TelemetryCfg `yaml:"telemetry"`

	Log LogCfg `yaml:"log"`
}

// Default is the configuration used when no file is given: fresh engine
// states on stream 0, no telemetry, info level logs.
func Default() *Config {
	cfg := &Config{Log: LogCfg{Level: "info"}}
	_ = cfg.AdjustConfig()
	return cfg
}

// AdjustConfig fills the derived fields and validates what yaml cannot.
func (cfg *Config) AdjustConfig() error {
	if err := cfg.Engine.adjust(); err != nil {
		return fmt.Errorf("engine section: %w", err)
	}
	if cfg.Telemetry.Enabled() {
		cfg.Telemetry.adjust()
	}
	if err := cfg.Log.adjust(); err != nil {
		return fmt.Errorf("log section: %w", err)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if err = cfg.AdjustConfig(); err != nil {
		return nil, fmt.Errorf("adjust config from %s: %w", path, err)
	}

	return cfg, nil
}
