// Package storage is a small bucketed key-value layer used to persist
// scheme settings. Values are opaque bytes; JSONStore adds encoding.
package storage

import "errors"

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrKeyNotFound    = errors.New("key not found")
)

// Backend is a bucketed key-value store.
type Backend interface {
	// CreateBucket is idempotent.
	CreateBucket(name string) error

	Put(bucket, key string, value []byte) error

	// Get returns ErrKeyNotFound when key is absent.
	Get(bucket, key string) ([]byte, error)

	// Delete is a no-op for absent keys.
	Delete(bucket, key string) error

	// ForEach visits the bucket's entries in key order.
	ForEach(bucket string, fn func(key string, value []byte) error) error

	Close() error
}
