package storage

import (
	"fmt"
	"slices"
	"sync"
)

// MemoryBackend is a non-persistent Backend, used by tests and by the CLI
// when no database path is configured.
type MemoryBackend struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{buckets: make(map[string]map[string][]byte)}
}

// CreateBucket creates the bucket if it does not exist yet
func (m *MemoryBackend) CreateBucket(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[name]; !ok {
		m.buckets[name] = make(map[string][]byte)
	}
	return nil
}

// Put stores a copy of value under key in bucket
func (m *MemoryBackend) Put(bucket, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, ok := m.buckets[bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	bkt[key] = slices.Clone(value)
	return nil
}

// Get returns a copy of the value stored under key
func (m *MemoryBackend) Get(bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, ok := m.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	value, ok := bkt[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrKeyNotFound, bucket, key)
	}
	return slices.Clone(value), nil
}

// Delete removes key from bucket
func (m *MemoryBackend) Delete(bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, ok := m.buckets[bucket]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	delete(bkt, key)
	return nil
}

// ForEach iterates over a snapshot, so fn may modify the backend.
func (m *MemoryBackend) ForEach(bucket string, fn func(key string, value []byte) error) error {
	m.mu.RLock()
	bkt, ok := m.buckets[bucket]
	if !ok {
		m.mu.RUnlock()
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	keys := make([]string, 0, len(bkt))
	values := make(map[string][]byte, len(bkt))
	for k, v := range bkt {
		keys = append(keys, k)
		values[k] = slices.Clone(v)
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	for _, k := range keys {
		if err := fn(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for the memory backend
func (m *MemoryBackend) Close() error {
	return nil
}
