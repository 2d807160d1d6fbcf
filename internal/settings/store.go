// Package settings persists named schemes.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pkg.jsn.cam/randomness/pkg/randomness/scheme"
	_ "pkg.jsn.cam/randomness/pkg/randomness/uds" // registers the uds kind
	"pkg.jsn.cam/randomness/pkg/storage"
)

const (
	bucketSchemes = "schemes"
	bucketMeta    = "meta"
	keyVersion    = "version"
)

// Record is one stored scheme.
type Record struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Kind    scheme.Kind     `json:"kind"`
	Scheme  json.RawMessage `json:"scheme"`
}

// Store keeps named schemes in a storage.Backend.
type Store struct {
	db     *storage.JSONStore
	logger *zap.Logger
}

// Open prepares backend for use, stamping the format version on first use
// and rejecting databases written by an incompatible version. The store
// owns backend and closes it in Close.
func Open(backend storage.Backend, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{db: storage.NewJSONStore(backend), logger: logger}

	for _, bucket := range []string{bucketSchemes, bucketMeta} {
		if err := s.db.CreateBucket(bucket); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}

	raw, err := s.db.Get(bucketMeta, keyVersion)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		if err := s.db.Put(bucketMeta, keyVersion, []byte(Version)); err != nil {
			return nil, fmt.Errorf("write settings version: %w", err)
		}
		logger.Debug("initialized settings", zap.String("version", Version))
	case err != nil:
		return nil, fmt.Errorf("read settings version: %w", err)
	default:
		if err := checkVersion(string(raw)); err != nil {
			logger.Warn("refusing settings database", zap.String("stored", string(raw)), zap.String("current", Version))
			return nil, err
		}
		logger.Debug("opened settings", zap.String("version", string(raw)))
	}

	return s, nil
}

// Save validates sch and stores it under name, replacing any previous
// scheme of that name.
func (s *Store) Save(name string, sch scheme.Scheme) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := scheme.Validate(sch); err != nil {
		return err
	}

	data, err := json.Marshal(sch)
	if err != nil {
		return fmt.Errorf("encode scheme %s: %w", name, err)
	}
	rec := Record{Name: name, Version: Version, Kind: sch.Kind(), Scheme: data}
	if err := s.db.PutJSON(bucketSchemes, name, rec); err != nil {
		return err
	}

	s.logger.Info("saved scheme",
		zap.String("name", name),
		zap.String("kind", string(sch.Kind())),
		zap.Stringer("id", sch.ID()))
	return nil
}

// Record returns the raw record stored under name.
func (s *Store) Record(name string) (Record, error) {
	var rec Record
	err := s.db.GetJSON(bucketSchemes, name, &rec)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Record{}, err
	}
	if err := checkVersion(rec.Version); err != nil {
		return Record{}, fmt.Errorf("scheme %s: %w", name, err)
	}
	return rec, nil
}

// Load returns the scheme stored under name. Fields missing from the record
// keep the kind's default values.
func (s *Store) Load(name string) (scheme.Scheme, error) {
	rec, err := s.Record(name)
	if err != nil {
		return nil, err
	}
	return rec.Decode()
}

// Decode overlays the stored fields on a default scheme of the record's kind.
func (r Record) Decode() (scheme.Scheme, error) {
	sch, err := scheme.Get(r.Kind)
	if err != nil {
		return nil, fmt.Errorf("scheme %s: %w", r.Name, err)
	}
	if err := json.Unmarshal(r.Scheme, sch); err != nil {
		return nil, fmt.Errorf("decode scheme %s: %w", r.Name, err)
	}
	return sch, nil
}

// List returns all records ordered by name.
func (s *Store) List() ([]Record, error) {
	var records []Record
	err := s.db.ForEach(bucketSchemes, func(key string, value []byte) error {
		var rec Record
		if err := json.Unmarshal(value, &rec); err != nil {
			s.logger.Warn("skipping unreadable record", zap.String("name", key), zap.Error(err))
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the scheme stored under name.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Get(bucketSchemes, name); err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	if err := s.db.Delete(bucketSchemes, name); err != nil {
		return err
	}
	s.logger.Info("deleted scheme", zap.String("name", name))
	return nil
}

// Close closes the underlying backend
func (s *Store) Close() error {
	return s.db.Close()
}
