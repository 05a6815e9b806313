package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProjectStoreRegisterWritesStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ueserver", "rpc.json")
	store := NewProjectStore(path)

	started := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	err := store.Register(Record{PID: 123, Port: 45231, Started: started})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading state file: %v", err)
	}
	var state struct {
		Port    int    `json:"port"`
		PID     int    `json:"pid"`
		Started string `json:"started"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("parsing state file: %v", err)
	}
	if state.Port != 45231 || state.PID != 123 {
		t.Fatalf("state = %+v", state)
	}
	if state.Started != "2026-08-30T10:30:00Z" {
		t.Fatalf("started = %q, want ISO-8601", state.Started)
	}
}

func TestProjectStoreUnregisterRemovesOwnRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ueserver", "rpc.json")
	store := NewProjectStore(path)

	if err := store.Register(Record{PID: 123, Port: 1}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := store.Unregister(123); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("state file still present after Unregister, stat err = %v", err)
	}
}

func TestProjectStoreUnregisterMissingFileIsNoop(t *testing.T) {
	store := NewProjectStore(filepath.Join(t.TempDir(), ".ueserver", "rpc.json"))

	if err := store.Unregister(123); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
}

func TestProjectStoreUnregisterLeavesForeignRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ueserver", "rpc.json")
	store := NewProjectStore(path)

	if err := store.Register(Record{PID: 999, Port: 1}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := store.Unregister(123); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("foreign record removed: %v", err)
	}
}

func TestProjectStoreUnregisterRemovesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ueserver", "rpc.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	store := NewProjectStore(path)
	if err := store.Unregister(123); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("corrupt state file not removed")
	}
}

func TestProcessRunningSelf(t *testing.T) {
	if !ProcessRunning(os.Getpid()) {
		t.Fatal("ProcessRunning(own pid) = false, want true")
	}
	if ProcessRunning(0) {
		t.Fatal("ProcessRunning(0) = true, want false")
	}
	if ProcessRunning(-5) {
		t.Fatal("ProcessRunning(-5) = true, want false")
	}
}
