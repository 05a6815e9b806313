package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func newTestSwitchboard(t *testing.T) *Switchboard {
	t.Helper()
	dir := t.TempDir()
	return NewSwitchboard(
		filepath.Join(dir, "switchboard.json"),
		filepath.Join(dir, "switchboard.lock"),
	)
}

func testRecord(pid, port int) Record {
	return Record{
		PID:         pid,
		Port:        port,
		Project:     "/work/game",
		ProjectName: "game",
		Started:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestSwitchboardRegisterAndRead(t *testing.T) {
	sb := newTestSwitchboard(t)

	if err := sb.Register(testRecord(100, 45231)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	instances, err := ReadSwitchboard(sb.Path())
	if err != nil {
		t.Fatalf("ReadSwitchboard() error = %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1", len(instances))
	}
	if instances[0].PID != 100 || instances[0].Port != 45231 {
		t.Fatalf("instances[0] = %+v", instances[0])
	}
	if instances[0].ProjectName != "game" {
		t.Fatalf("ProjectName = %q, want %q", instances[0].ProjectName, "game")
	}
}

func TestSwitchboardRegisterIsIdempotentPerPID(t *testing.T) {
	sb := newTestSwitchboard(t)

	if err := sb.Register(testRecord(100, 1111)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := sb.Register(testRecord(100, 2222)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	instances, err := ReadSwitchboard(sb.Path())
	if err != nil {
		t.Fatalf("ReadSwitchboard() error = %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1 after re-registration", len(instances))
	}
	if instances[0].Port != 2222 {
		t.Fatalf("Port = %d, want supersede to 2222", instances[0].Port)
	}
}

func TestSwitchboardKeepsOtherPIDs(t *testing.T) {
	sb := newTestSwitchboard(t)

	for pid := 1; pid <= 3; pid++ {
		if err := sb.Register(testRecord(pid, 1000+pid)); err != nil {
			t.Fatalf("Register(pid=%d) error = %v", pid, err)
		}
	}
	if err := sb.Unregister(2); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}

	instances, err := ReadSwitchboard(sb.Path())
	if err != nil {
		t.Fatalf("ReadSwitchboard() error = %v", err)
	}
	if len(instances) != 2 {
		t.Fatalf("len(instances) = %d, want 2", len(instances))
	}
	for _, rec := range instances {
		if rec.PID == 2 {
			t.Fatalf("pid 2 still present: %+v", instances)
		}
	}
}

func TestSwitchboardUnregisterAbsentPIDIsNoop(t *testing.T) {
	sb := newTestSwitchboard(t)

	if err := sb.Unregister(9999); err != nil {
		t.Fatalf("Unregister() on empty store error = %v", err)
	}
	if err := sb.Register(testRecord(1, 1001)); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := sb.Unregister(9999); err != nil {
		t.Fatalf("Unregister() absent pid error = %v", err)
	}

	instances, err := ReadSwitchboard(sb.Path())
	if err != nil {
		t.Fatalf("ReadSwitchboard() error = %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1", len(instances))
	}
}

func TestSwitchboardToleratesCorruptFile(t *testing.T) {
	sb := newTestSwitchboard(t)

	if err := os.MkdirAll(filepath.Dir(sb.Path()), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(sb.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	if err := sb.Register(testRecord(7, 7007)); err != nil {
		t.Fatalf("Register() over corrupt file error = %v", err)
	}

	instances, err := ReadSwitchboard(sb.Path())
	if err != nil {
		t.Fatalf("ReadSwitchboard() error = %v", err)
	}
	if len(instances) != 1 || instances[0].PID != 7 {
		t.Fatalf("instances = %+v, want single pid 7", instances)
	}
}

func TestSwitchboardConcurrentRegistrationsLoseNothing(t *testing.T) {
	sb := newTestSwitchboard(t)

	const n = 16
	var wg sync.WaitGroup
	for pid := 1; pid <= n; pid++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			if err := sb.Register(testRecord(pid, 3000+pid)); err != nil {
				t.Errorf("Register(pid=%d) error = %v", pid, err)
			}
		}(pid)
	}
	wg.Wait()

	instances, err := ReadSwitchboard(sb.Path())
	if err != nil {
		t.Fatalf("ReadSwitchboard() error = %v", err)
	}
	if len(instances) != n {
		t.Fatalf("len(instances) = %d, want %d", len(instances), n)
	}
}

func TestSwitchboardStartedSerializesISO8601(t *testing.T) {
	sb := newTestSwitchboard(t)

	rec := testRecord(5, 5005)
	if err := sb.Register(rec); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	data, err := os.ReadFile(sb.Path())
	if err != nil {
		t.Fatalf("reading switchboard: %v", err)
	}
	var raw struct {
		Instances []map[string]any `json:"instances"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("parsing switchboard: %v", err)
	}
	started, _ := raw.Instances[0]["started"].(string)
	if _, err := time.Parse(time.RFC3339, started); err != nil {
		t.Fatalf("started = %q, want RFC 3339: %v", started, err)
	}
}
