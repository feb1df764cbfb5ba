// Package spool keeps consultation submissions that could not reach
// the database. Records are appended to a JSON file and never pruned;
// reconciliation back into the authoritative store is a manual task.
package spool

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix marks spooled ids as non-authoritative so they can
// never be mistaken for database ids.
const LocalIDPrefix = "local-"

type Record struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	FitnessGoals  string    `json:"fitness_goals"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append adds a record to the spool file and returns its generated
// local id. The whole file is rewritten on each append; spool files
// stay small enough that this is not a concern.
func (s *Store) Append(record Record) (string, error) {
	if record.ID == "" {
		record.ID = LocalIDPrefix + uuid.NewString()
	}
	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readLocked()
	if err != nil {
		return "", err
	}
	records = append(records, record)

	if err := s.writeLocked(records); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (s *Store) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *Store) readLocked() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) writeLocked(records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never corrupts the spool.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Clean(s.path))
}
