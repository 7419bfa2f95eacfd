// Package store provides the key-value stores used to persist portfolio snapshots.
//
// A store only knows about named string blobs. The layout of the portfolio
// keys belongs to the prysm Repository.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by Set when the store has no room for the value.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a key-value store of string values.
type Store interface {
	// Get returns the value of key, and false if there is none.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the store resources.
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverDir    = "dir"
	DriverSQLite = "sqlite"
)

// Open opens a store by driver name. 'path' is the directory of the dir
// driver and the database file of the sqlite driver. The memory driver
// ignores it.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(0), nil
	case DriverDir, "":
		return OpenDir(path)
	case DriverSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown store driver %q, want %q, %q or %q", driver, DriverMemory, DriverDir, DriverSQLite)
	}
}
