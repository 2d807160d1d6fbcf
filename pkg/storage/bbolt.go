package storage

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BboltBackend is a Backend persisted in a single bbolt file.
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (or creates) the database at path. It fails after a
// second if another process holds the file lock.
func NewBboltBackend(path string) (*BboltBackend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open settings database %s: %w", path, err)
	}
	return &BboltBackend{db: db}, nil
}

// CreateBucket creates the bucket if it does not exist yet
func (b *BboltBackend) CreateBucket(name string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
}

// Put stores value under key in bucket
func (b *BboltBackend) Put(bucket, key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		return bkt.Put([]byte(key), value)
	})
}

// Get returns a copy of the value stored under key
func (b *BboltBackend) Get(bucket, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		v := bkt.Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: %s/%s", ErrKeyNotFound, bucket, key)
		}
		// v is only valid for the life of the transaction.
		value = append([]byte(nil), v...)
		return nil
	})
	return value, err
}

// Delete removes key from bucket
func (b *BboltBackend) Delete(bucket, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		return bkt.Delete([]byte(key))
	})
}

// ForEach visits every entry of bucket in key order
func (b *BboltBackend) ForEach(bucket string, fn func(key string, value []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		return bkt.ForEach(func(k, v []byte) error {
			return fn(string(k), append([]byte(nil), v...))
		})
	})
}

// Close closes the database file
func (b *BboltBackend) Close() error {
	return b.db.Close()
}

func lookup(tx *bolt.Tx, bucket string) (*bolt.Bucket, error) {
	bkt := tx.Bucket([]byte(bucket))
	if bkt == nil {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	return bkt, nil
}
