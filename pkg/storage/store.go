package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the persistence capability behind profile, account and language
// state. Implementations must never swallow I/O failures; callers decide how
// to log or surface them.
type Store interface {
	// Load unmarshals the value at key into v. The boolean is false when the
	// key has never been written.
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
	Clear(key string) error
}

// FileStore keeps each key as a JSON file under a directory. Writes go
// through a temp file rename so readers never observe a half-written value.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read key %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode key %s: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode key %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit key %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear key %s: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]json.RawMessage)}
}

func (s *MemStore) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemStore) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = raw
	return nil
}

func (s *MemStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
