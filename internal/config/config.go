// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"edugestao/internal/kv"
)

// Config holds the EDUGESTAO_* settings.
type Config struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	FSRoot        string `env:"FS_ROOT" envDefault:"./data"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"edugestao.db"`
	PostgresDSN   string `env:"POSTGRES_DSN"`
	RedisURL      string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"edugestao:"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Prefix    string `env:"S3_PREFIX"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3PathStyle bool   `env:"S3_PATH_STYLE"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	ExportDir   string `env:"EXPORT_DIR" envDefault:"."`
	MetricsFile string `env:"METRICS_FILE"`
	AIAPIKey    string `env:"AI_API_KEY"`
}

// Prefix is prepended to every variable name.
const Prefix = "EDUGESTAO_"

// Load reads an optional .env file and then parses the environment. Values
// already present in the environment win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...) // a missing .env is fine
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Storage converts the settings into a backend selection.
func (c Config) Storage() kv.Config {
	return kv.Config{
		Driver:      kv.Driver(c.StorageDriver),
		FSRoot:      c.FSRoot,
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.PostgresDSN,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
		S3: kv.S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			Prefix:    c.S3Prefix,
			Endpoint:  c.S3Endpoint,
			PathStyle: c.S3PathStyle,
		},
	}
}
