// Package storage keeps serialized diagrams in named slots, either as files
// in a data directory or as rows in a local SQLite database.
package storage

import (
	"context"
	"fmt"
	"io/fs"
	"regexp"
)

// ErrNotFound is returned for a slot that has never been written. It wraps
// fs.ErrNotExist so callers can test for it without importing this package.
var ErrNotFound = fmt.Errorf("slot not found: %w", fs.ErrNotExist)

// Store is a flat key/value store of slot blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func checkKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid slot key %q", key)
	}
	return nil
}

// Open returns the store for a backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendSQLite:
		return NewSQLiteStore(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
