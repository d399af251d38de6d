package config

import "time"

const DefaultTelemetryInterval = 5 * time.Second

type TelemetryCfg struct {
	// Interval between two counter reports, e.g. "5s". Non-positive values
	// fall back to DefaultTelemetryInterval.
	Interval time.Duration `yaml:"interval"`
}

func (cfg *TelemetryCfg) Enabled() bool {
	return cfg != nil
}

func (cfg *TelemetryCfg) adjust() {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultTelemetryInterval
	}
}
