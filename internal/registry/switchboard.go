package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// switchboardFile is the on-disk shape of the shared discovery file.
type switchboardFile struct {
	Instances []Record `json:"instances"`
}

// Switchboard maintains the shared multi-instance discovery file
// (~/.ueserver/switchboard.json). Writes are read-modify-write under an
// advisory flock on a sidecar lock file, which serializes cooperating
// processes; a writer that does not take the lock keeps the original
// best-effort semantics where simultaneous registrations can lose one record.
type Switchboard struct {
	path     string
	lockPath string
}

// NewSwitchboard creates a switchboard at path, locking on lockPath.
func NewSwitchboard(path, lockPath string) *Switchboard {
	return &Switchboard{path: path, lockPath: lockPath}
}

// Path returns the switchboard file location.
func (s *Switchboard) Path() string {
	return s.path
}

// Register adds rec, pruning any existing record with the same pid first.
// Pruning matches by pid only, with no liveness probe: a dead instance's
// record is reclaimed by the next registration under the reused pid.
func (s *Switchboard) Register(rec Record) error {
	return s.update(func(instances []Record) []Record {
		return append(removePID(instances, rec.PID), rec)
	})
}

// Unregister drops the record for pid, if any.
func (s *Switchboard) Unregister(pid int) error {
	return s.update(func(instances []Record) []Record {
		return removePID(instances, pid)
	})
}

func (s *Switchboard) update(mutate func([]Record) []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating switchboard directory: %w", err)
	}

	unlock, err := acquireFileLock(s.lockPath)
	if err != nil {
		return fmt.Errorf("locking switchboard: %w", err)
	}
	defer unlock() //nolint:errcheck

	instances, err := ReadSwitchboard(s.path)
	if err != nil {
		return err
	}

	out := switchboardFile{Instances: mutate(instances)}
	if out.Instances == nil {
		out.Instances = []Record{}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding switchboard: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// ReadSwitchboard parses the instance list at path. A missing or corrupt
// file is an empty instance set, not an error: the next write repairs it.
func ReadSwitchboard(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file switchboardFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil
	}
	return file.Instances, nil
}

func removePID(instances []Record, pid int) []Record {
	out := instances[:0]
	for _, rec := range instances {
		if rec.PID != pid {
			out = append(out, rec)
		}
	}
	return out
}

// writeFileAtomic replaces path via a same-directory temp file and rename so
// readers never observe a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	cleanup = false
	return nil
}
