package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
	Seed    SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=clinic_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	Endpoint  string `env:"STORAGE_ENDPOINT,   default=localhost:9000"`
	AccessKey string `env:"STORAGE_ACCESS_KEY, default=minioadmin"`
	SecretKey string `env:"STORAGE_SECRET_KEY, default=minioadmin"`
	Bucket    string `env:"STORAGE_BUCKET,     default=clinic-images"`
	Region    string `env:"STORAGE_REGION"`
	UseSSL    bool   `env:"STORAGE_USE_SSL,    default=false"`
}

// SeedConfig controls the bootstrap admin account created on first start.
type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin"`
	AdminFullName string `env:"SEED_ADMIN_FULL_NAME, default=Administrator"`
}

// IsProduction reports whether the service runs with production settings,
// which among other things marks the session cookie Secure.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
