package config

import (
	"fmt"

	"github.com/Borislavv/go-simrand/stream"
)

type EngineCfg struct {
	// Seed is the root handed to PlantSeeds:
	//   - > 0: planted as is (reduced modulo 2^31-1);
	//   - < 0: planted from the clock;
	//   - 0:   nothing is planted, streams keep their default states.
	Seed int64 `yaml:"seed"`

	// SeedName derives Seed from a stable hash of an experiment name.
	// When set it takes precedence over Seed.
	SeedName string `yaml:"seed_name"`

	// Stream is the stream selected once seeding is done, taken modulo 256.
	Stream int `yaml:"stream"`
}

// Planted reports whether the engine has to be planted at start.
func (cfg EngineCfg) Planted() bool {
	return cfg.Seed != 0
}

func (cfg *EngineCfg) adjust() error {
	if cfg.SeedName != "" {
		cfg.Seed = stream.SeedFromName(cfg.SeedName)
	}
	if cfg.Seed > 0 && cfg.Seed%stream.Modulus == 0 {
		return fmt.Errorf("seed %d reduces to 0 modulo %d", cfg.Seed, stream.Modulus)
	}
	cfg.Stream = ((cfg.Stream % stream.Streams) + stream.Streams) % stream.Streams
	return nil
}
