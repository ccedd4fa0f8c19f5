// Package kv re-exports the slot store abstractions and selects a backend.
// Packages outside internal/kv depend on kv.Store, never on internal/infra/kv.
package kv

import (
	"edugestao/internal/kv/core"
)

type (
	// Driver identifies a slot backend driver.
	Driver = core.Driver
	// Store is the interface for slot storage backends.
	Store = core.Store
)

const (
	DriverMemory     = core.DriverMemory
	DriverFilesystem = core.DriverFilesystem
	DriverSQLite     = core.DriverSQLite
	DriverPostgres   = core.DriverPostgres
	DriverRedis      = core.DriverRedis
	DriverS3         = core.DriverS3
)

// ErrEmptyKey indicates a blank slot name.
var ErrEmptyKey = core.ErrEmptyKey
