package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed down explicitly.
type Config struct {
	Port         string `env:"PORT,          default=5000"`
	Env          string `env:"ENV,           default=development"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	ClientOrigin string `env:"CLIENT_ORIGIN, default=http://localhost:5173"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// JWTSecret has no default: the process refuses to start without it.
	JWTSecret  string        `env:"JWT_SECRET,     required"`
	TokenTTL   time.Duration `env:"JWT_EXPIRES_IN, default=168h"`
	BcryptCost int           `env:"BCRYPT_COST,    default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=kusina"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR,       default=localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,         default=0"`
	RecipeCacheTTL time.Duration `env:"RECIPE_CACHE_TTL, default=5m"`
}

// Accepted BCRYPT_COST range. Below the floor the hashes are too cheap to
// brute force offline; above the ceiling bcrypt refuses the cost.
const (
	MinBcryptCost = 10
	MaxBcryptCost = 31
)

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// MustLoad is Load that panics, for use in main.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost < MinBcryptCost || cfg.Auth.BcryptCost > MaxBcryptCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", MinBcryptCost, MaxBcryptCost, cfg.Auth.BcryptCost)
	}
	return &cfg, nil
}
