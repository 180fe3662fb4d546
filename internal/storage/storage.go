// Package storage provides the device key-value store: string keys mapped to
// JSON documents, durable across restarts. Two backends exist — a local JSON
// file (the default) and PostgreSQL.
//
// Operations on a single key are serialized by each backend, but there is no
// atomicity across keys and no transaction spanning two operations: callers
// that read a collection, modify it, and write it back assume a single
// writer.
package storage

import "context"

// Store is the persistence boundary shared by all repositories.
type Store interface {
	// Get decodes the value stored under key into dest.
	// It returns false with a nil error when the key was never set or has
	// been removed.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set serializes value to JSON and persists it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
