// Package core defines the slot store abstraction shared by the kv backends
// and the kv facade that selects between them.
package core

import (
	"context"
	"errors"
)

// Driver identifies a concrete slot store backend implementation.
type Driver string

const (
	// DriverMemory represents an in-memory implementation typically used in tests.
	DriverMemory Driver = "memory"
	// DriverFilesystem stores one file per slot under a root directory.
	DriverFilesystem Driver = "fs"
	// DriverSQLite represents an embedded sqlite file.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres represents a PostgreSQL server.
	DriverPostgres Driver = "postgres"
	// DriverRedis represents a Redis server.
	DriverRedis Driver = "redis"
	// DriverS3 represents an S3 / MinIO compatible bucket.
	DriverS3 Driver = "s3"
)

// Store is a durable key-value byte store addressed by slot name.
// An absent slot is reported through ok=false rather than an error.
type Store interface {
	// Get returns the payload stored under key.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Put replaces the payload stored under key.
	Put(ctx context.Context, key string, payload []byte) error
	// Delete removes a slot. Returns (false, nil) if not found.
	Delete(ctx context.Context, key string) (bool, error)
	// Close releases backend resources.
	Close() error
	// Driver returns the configured backend driver string.
	Driver() Driver
}

// ErrEmptyKey is returned when a slot name is blank.
var ErrEmptyKey = errors.New("kv: empty key")
