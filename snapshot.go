package curbwise

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const snapshotFile = "session.json"

// Snapshot is the durable slice of session state that survives restarts.
// The principal is intentionally excluded and always refetched; only the
// credential and the authenticated flag persist.
type Snapshot struct {
	Token         string `json:"token"`
	Authenticated bool   `json:"is_authenticated"`
}

// SnapshotStore persists the session snapshot. Only the Session writes to
// it: reads happen during Initialize, writes on successful Login, and
// Clear on Logout or credential teardown.
type SnapshotStore interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
	Clear() error
}

// FileSnapshotStore keeps the snapshot in a JSON file under the user's home
// directory.
type FileSnapshotStore struct {
	path string
}

var _ SnapshotStore = (*FileSnapshotStore)(nil)

// NewFileSnapshotStore creates the ~/.curbwise directory if needed and
// returns a store backed by ~/.curbwise/session.json.
func NewFileSnapshotStore() (*FileSnapshotStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".curbwise")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .curbwise directory: %w", err)
	}
	return &FileSnapshotStore{path: filepath.Join(dir, snapshotFile)}, nil
}

// NewFileSnapshotStoreAt returns a store backed by the given file path.
func NewFileSnapshotStoreAt(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

// Load reads and parses the snapshot file. A missing file is not an error;
// it yields the zero snapshot.
func (s *FileSnapshotStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("failed to read session file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	return snap, nil
}

// Save replaces the snapshot file. The write goes through a temp file and
// rename so readers never observe a partial snapshot.
func (s *FileSnapshotStore) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear deletes the snapshot file. Clearing an absent snapshot is a no-op.
func (s *FileSnapshotStore) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}

// MemorySnapshotStore keeps the snapshot in memory, for tests and for
// embedders that do not want durable sessions.
type MemorySnapshotStore struct {
	mu   sync.Mutex
	snap Snapshot
	set  bool
}

var _ SnapshotStore = (*MemorySnapshotStore)(nil)

// NewMemorySnapshotStore returns an empty in-memory store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return Snapshot{}, nil
	}
	return s.snap, nil
}

func (s *MemorySnapshotStore) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.set = true
	return nil
}

func (s *MemorySnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
	s.set = false
	return nil
}
