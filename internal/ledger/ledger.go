// Package ledger keeps a history of generation runs in a bbolt database.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// ErrRunNotFound is returned by Get for unknown run IDs
var ErrRunNotFound = errors.New("run not found")

// Run is one generation run
type Run struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	Count      int64     `json:"count"`
	Bytes      int64     `json:"bytes"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Begin starts a new run record for a fixture at path
func Begin(path string, count int64) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Path:      path,
		Count:     count,
		StartedAt: time.Now(),
	}
}

// Finish stamps the run with its output size and completion time
func (r *Run) Finish(bytes int64) {
	r.Bytes = bytes
	r.FinishedAt = time.Now()
}

// Duration returns how long the run took
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Ledger stores runs using bbolt
type Ledger struct {
	db   *bbolt.DB
	path string
}

// Open opens (or creates) the ledger database at dbPath
func Open(dbPath string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	log.Printf("[LEDGER] Opened %s", dbPath)

	return &Ledger{db: db, path: dbPath}, nil
}

// Close closes the database
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores a run, replacing any previous entry with the same ID
func (l *Ledger) Record(run *Run) error {
	encoded, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode run %s: %w", run.ID, err)
	}

	return l.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), encoded)
	})
}

// Get returns the run with the given ID
func (l *Ledger) Get(id string) (*Run, error) {
	var run *Run

	err := l.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		run = &Run{}
		return json.Unmarshal(v, run)
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}

// List returns every recorded run, oldest first
func (l *Ledger) List() ([]*Run, error) {
	var runs []*Run

	err := l.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				log.Printf("[LEDGER] Warning: Failed to decode run %s: %v", k, err)
				return nil
			}
			runs = append(runs, &run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})

	return runs, nil
}
