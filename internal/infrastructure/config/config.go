package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDevSecret is the signing key used when JWT_SECRET is unset. It
// exists so local development works out of the box; any real deployment must
// override it.
const InsecureDevSecret = "your-super-secret-key-change-in-production"

type Config struct {
	Port     string        `env:"PORT,      default=8080"`
	Env      string        `env:"ENV,       default=development"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`
	JWT      JWTConfig
	DB       DBConfig
	Redis    RedisConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=168h"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST,      default=localhost"`
	Port     int    `env:"DB_PORT,      default=5432"`
	User     string `env:"DB_USER,      default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,      default=quantumalphaindiadb"`
	SSLMode  string `env:"DB_SSLMODE,   default=disable"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
