package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	AllowOrigins []string `env:"ALLOW_ORIGINS, default=http://localhost:3000"`

	Session   SessionConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type SessionConfig struct {
	TTL          time.Duration `env:"SESSION_TTL,    default=72h"`
	CookieName   string        `env:"SESSION_COOKIE, default=jwt"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tourism"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig throttles POST /login per client IP.
type RateLimitConfig struct {
	PerSecond float64 `env:"LOGIN_RATE_LIMIT, default=1"`
	Burst     int     `env:"LOGIN_RATE_BURST, default=5"`
}

// IsProduction reports whether the service runs with production defaults
// (JSON logs, secure cookies).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.IsProduction() {
		cfg.Session.CookieSecure = true
	}
	return &cfg, nil
}
