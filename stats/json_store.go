package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// JSONStore keeps the score log in a single JSON file. The whole log is held
// in memory and rewritten on every mutation; score logs stay small enough
// that simplicity beats incremental IO.
type JSONStore struct {
	path    string
	mutex   sync.RWMutex
	records []Record
}

// NewJSONStore opens or creates the score log at path. A missing file is an
// empty log. A corrupt file yields a usable empty store alongside the error,
// so the caller can log the problem and keep playing.
func NewJSONStore(path string) (*JSONStore, error) {
	store := &JSONStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return store, fmt.Errorf("read score log: %w", err)
	}
	if len(data) == 0 {
		return store, nil
	}
	if err := json.Unmarshal(data, &store.records); err != nil {
		store.records = nil
		return store, fmt.Errorf("corrupt score log %s: %w", path, err)
	}
	return store, nil
}

func (s *JSONStore) Add(r Record) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.records = append(s.records, r)
	return s.save()
}

func (s *JSONStore) All() ([]Record, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *JSONStore) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.records = nil
	return s.save()
}

func (s *JSONStore) Close() error {
	return nil
}

// save rewrites the file; callers hold the write lock.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode score log: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write score log: %w", err)
	}
	return nil
}
