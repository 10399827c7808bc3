package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Postgres PostgresConfig
	Redis    RedisConfig

	ClickWorkers int  `env:"CLICK_WORKERS, default=4"`
	GopsEnabled  bool `env:"GOPS_ENABLED,  default=false"`
}

type AuthConfig struct {
	// JWTSecret has no default: the process refuses to start without it.
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,  default=1h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL, required"`
	MaxConns int32  `env:"PG_POOL_MAX,  default=10"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
