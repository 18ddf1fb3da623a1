// Package config loads runtime settings from the environment. Every value
// has a default suitable for a local install; the variables exist so packaged
// builds can relocate state or pin a maze seed for bug reports.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
type Config struct {
	// StatsBackend selects the score log backend: "json" or "sqlite".
	StatsBackend string `env:"MAZE3D_STATS_BACKEND" envDefault:"json"`

	// StatsPath is the score log location. The extension should match the
	// backend but nothing enforces it.
	StatsPath string `env:"MAZE3D_STATS_PATH" envDefault:"maze_stats.json"`

	// LogDir receives one timestamped log file per process.
	LogDir string `env:"MAZE3D_LOG_DIR" envDefault:"logs"`

	// AudioEnabled gates speaker initialization entirely.
	AudioEnabled bool `env:"MAZE3D_AUDIO" envDefault:"true"`

	// Seed reproduces a maze when nonzero; 0 generates randomly.
	Seed int64 `env:"MAZE3D_SEED" envDefault:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
