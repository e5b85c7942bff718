// Package bbolt implements ports.SnapshotStore using bbolt (embedded B+ tree).
// Every dataset is one JSON value under the "snapshots" bucket. Writes are
// transactional, so a crash mid-write leaves the previous snapshot intact.
package bbolt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/wce/internal/ports"
)

var bucketSnapshots = []byte("snapshots")

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path is the database file location.
func (s *Store) Path() string {
	return s.db.Path()
}

// Save overwrites the snapshot for dataset.
func (s *Store) Save(dataset string, snap *ports.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		if err != nil {
			return err
		}
		return b.Put([]byte(dataset), data)
	})
}

// Load retrieves the snapshot for dataset.
// Returns nil, nil if nothing has been saved.
func (s *Store) Load(dataset string) (*ports.Snapshot, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		// bbolt slices are only valid inside the transaction
		if v := b.Get([]byte(dataset)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var snap ports.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %q: %w", dataset, err)
	}
	return &snap, nil
}

// Delete removes one dataset. Deleting a missing dataset is not an error.
func (s *Store) Delete(dataset string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(dataset))
	})
}

// Clear drops every stored dataset.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketSnapshots); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		return nil
	})
}

// snapshotHeader decodes everything but the records' contents.
type snapshotHeader struct {
	FetchedAt time.Time         `json:"fetched_at"`
	Countries []json.RawMessage `json:"countries"`
}

// Info lists every stored dataset. bbolt iterates keys in byte order, so the
// result is sorted by name.
func (s *Store) Info() ([]ports.SnapshotInfo, error) {
	var out []ports.SnapshotInfo

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var h snapshotHeader
			if err := json.Unmarshal(v, &h); err != nil {
				return fmt.Errorf("unmarshal snapshot %q: %w", k, err)
			}
			out = append(out, ports.SnapshotInfo{
				Dataset:   string(k),
				Count:     len(h.Countries),
				FetchedAt: h.FetchedAt,
				Bytes:     len(v),
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var _ ports.SnapshotStore = (*Store)(nil)
