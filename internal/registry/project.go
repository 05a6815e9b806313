package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// projectState is the on-disk shape of the single-instance rpc.json.
type projectState struct {
	Port    int       `json:"port"`
	PID     int       `json:"pid"`
	Started time.Time `json:"started"`
}

// ProjectStore publishes a single-instance discovery file scoped to one
// project directory (<project>/.ueserver/rpc.json).
type ProjectStore struct {
	path string
}

// NewProjectStore creates a store writing to the given rpc.json path.
func NewProjectStore(path string) *ProjectStore {
	return &ProjectStore{path: path}
}

// Path returns the state file location.
func (s *ProjectStore) Path() string {
	return s.path
}

// Register writes the state file, creating the parent directory if needed.
func (s *ProjectStore) Register(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	state := projectState{Port: rec.Port, PID: rec.PID, Started: rec.Started}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Unregister removes the state file. A file recording a different live pid
// is left alone so one instance's shutdown cannot evict another's record;
// unreadable content is treated as stale and removed.
func (s *ProjectStore) Unregister(pid int) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	var state projectState
	if err := json.Unmarshal(data, &state); err == nil && state.PID != pid {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", s.path, err)
	}
	return nil
}
