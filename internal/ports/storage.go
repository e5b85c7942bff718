package ports

import (
	"time"

	"github.com/corey/wce/internal/domain/country"
)

// DatasetIndependent is the key under which the full list fetch is cached.
const DatasetIndependent = "independent"

// Snapshot is one cached fetch of the country collection.
type Snapshot struct {
	FetchedAt time.Time         `json:"fetched_at"`
	Countries []country.Country `json:"countries"`
}

// Age is how long ago the snapshot was fetched.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// SnapshotInfo summarises one stored snapshot without its records.
type SnapshotInfo struct {
	Dataset   string    `json:"dataset" yaml:"dataset"`
	Count     int       `json:"count" yaml:"count"`
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
	Bytes     int       `json:"bytes" yaml:"bytes"`
}

// SnapshotStore caches upstream fetches on disk so restarts do not refetch.
// It is a cache, not a source of truth: any snapshot may be discarded.
//
// Save must be transactional. A crash mid-write must not corrupt the
// previously committed snapshot.
type SnapshotStore interface {
	// Save overwrites the snapshot for dataset.
	Save(dataset string, snap *Snapshot) error

	// Load returns nil, nil if nothing is stored for dataset.
	Load(dataset string) (*Snapshot, error)

	// Delete removes one dataset. Idempotent.
	Delete(dataset string) error

	// Info lists every stored dataset, sorted by name.
	Info() ([]SnapshotInfo, error)

	Close() error
}
