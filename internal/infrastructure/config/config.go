package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	JWTSecret   string `env:"JWT_SECRET"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	StoreDriver string `env:"STORE_DRIVER, default=memory"`

	// EmailDomain is the institutional suffix required for registration.
	EmailDomain string        `env:"EMAIL_DOMAIN, default=.edu"`
	SessionTTL  time.Duration `env:"SESSION_TTL,  default=24h"`

	// MaxUploadBytes caps accepted file descriptors (default 100 MB).
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES, default=104857600"`

	CacheSize int           `env:"FILE_CACHE_SIZE, default=512"`
	CacheTTL  time.Duration `env:"FILE_CACHE_TTL,  default=5m"`

	DownloadWorkers int `env:"DOWNLOAD_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campus_portal"`
}

type RedisConfig struct {
	// Addr is optional: when empty the in-memory session store is used.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
