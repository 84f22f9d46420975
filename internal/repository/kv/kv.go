// Package kv defines the byte-level persistence contract the record store
// flushes through: one entry per entity collection.
package kv

import "context"

// Store is the minimal key-value surface the bookkeeping core needs. Get
// returns found=false when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
