package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=3000"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=my_secret_key"`
	TokenTTL  time.Duration `env:"JWT_TTL,    default=1h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	DataDir   string `env:"DATA_DIR,   default=./data"`
	UploadDir string `env:"UPLOAD_DIR, default=./uploads"`

	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type RedisConfig struct {
	// Addr left empty disables Redis entirely; the rate limiter then passes
	// all traffic through and the readiness probe skips the ping.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	// Requests per window allowed on the anonymous endpoints, per client IP.
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=60"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
