package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
	Login LoginConfig
}

type JWTConfig struct {
	// Secret is the HMAC signing key; supplied at startup, constant for the
	// process lifetime.
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL, default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=rentacar"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SeedConfig struct {
	AdminEmail    string `env:"ADMIN_EMAIL, default=admin@rentacar.local"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
