package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration. An empty DBDSN selects the
// in-memory fixture backend, an empty RedisAddr the in-process cache.
type Config struct {
	Addr          string        `env:"LIFERPG_ADDR" envDefault:":8080"`
	DBDSN         string        `env:"LIFERPG_DB_DSN"`
	RedisAddr     string        `env:"LIFERPG_REDIS_ADDR"`
	SnapshotTTL   time.Duration `env:"LIFERPG_SNAPSHOT_TTL" envDefault:"10s"`
	MigrationsDir string        `env:"LIFERPG_MIGRATIONS_DIR" envDefault:"./migrations"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
