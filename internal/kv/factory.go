package kv

import (
	"context"
	"fmt"

	"edugestao/internal/infra/kv/fs"
	"edugestao/internal/infra/kv/memory"
	"edugestao/internal/infra/kv/postgres"
	"edugestao/internal/infra/kv/redis"
	infraS3 "edugestao/internal/infra/kv/s3"
	"edugestao/internal/infra/kv/sqlite"
)

// S3Config re-exports the infra S3 configuration type.
type S3Config = infraS3.Config

// Config selects and parameterises a backend.
type Config struct {
	Driver      Driver
	FSRoot      string
	SQLitePath  string
	PostgresDSN string
	RedisURL    string
	RedisPrefix string
	S3          S3Config
}

// Open constructs the Store named by cfg.Driver. An empty driver means sqlite.
func Open(ctx context.Context, cfg Config) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFilesystem:
		return fs.New(cfg.FSRoot)
	case DriverSQLite:
		return sqlite.NewStore(cfg.SQLitePath)
	case DriverPostgres:
		return postgres.NewStore(ctx, cfg.PostgresDSN)
	case DriverRedis:
		return redis.NewStore(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case DriverS3:
		return infraS3.New(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memory.New() }

// NewMockS3ForTests exposes the in-memory S3 fake for cross-package tests.
func NewMockS3ForTests() Store { return infraS3.NewMockForTests() }
