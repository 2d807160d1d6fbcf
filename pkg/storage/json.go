package storage

import (
	"encoding/json"
	"fmt"
)

// JSONStore wraps a Backend with JSON encoding.
type JSONStore struct {
	Backend
}

// NewJSONStore wraps backend with JSON encoding
func NewJSONStore(backend Backend) *JSONStore {
	return &JSONStore{Backend: backend}
}

// PutJSON stores the JSON encoding of v under key
func (j *JSONStore) PutJSON(bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", bucket, key, err)
	}
	return j.Put(bucket, key, data)
}

// GetJSON decodes the value at key into v. A missing key is reported as
// ErrKeyNotFound and leaves v untouched.
func (j *JSONStore) GetJSON(bucket, key string, v any) error {
	data, err := j.Get(bucket, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s/%s: %w", bucket, key, err)
	}
	return nil
}
