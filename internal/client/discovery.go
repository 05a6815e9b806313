package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lpmwfx/UEServer/internal/paths"
	"github.com/lpmwfx/UEServer/internal/registry"
)

// DiscoverProject locates the server registered for a project directory by
// reading <project>/.ueserver/rpc.json. It validates the record and checks
// that the registered process is still alive, so a file left behind by a
// crash produces a clear error instead of a dangling connection attempt.
func DiscoverProject(projectDir string) (registry.Record, error) {
	path := paths.ProjectStatePath(projectDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return registry.Record{}, fmt.Errorf(
				"server not running: %s not found (start the host with the ueserver module enabled)", path)
		}
		return registry.Record{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var state struct {
		Port    int       `json:"port"`
		PID     int       `json:"pid"`
		Started time.Time `json:"started"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return registry.Record{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if state.Port <= 0 {
		return registry.Record{}, fmt.Errorf("missing or invalid 'port' field in %s", path)
	}
	if state.PID <= 0 {
		return registry.Record{}, fmt.Errorf("missing or invalid 'pid' field in %s", path)
	}
	if !registry.ProcessRunning(state.PID) {
		return registry.Record{}, fmt.Errorf(
			"stale state file: process %d is not running (remove %s and restart the host)", state.PID, path)
	}

	return registry.Record{PID: state.PID, Port: state.Port, Started: state.Started}, nil
}

// DiscoverAll lists the live instances from the user switchboard. Records
// whose pid is no longer running are filtered out, not removed: write-time
// pruning belongs to the next registering instance.
func DiscoverAll() ([]registry.Record, error) {
	return discoverAllFrom(paths.SwitchboardPath())
}

func discoverAllFrom(path string) ([]registry.Record, error) {
	instances, err := registry.ReadSwitchboard(path)
	if err != nil {
		return nil, err
	}

	live := make([]registry.Record, 0, len(instances))
	for _, rec := range instances {
		if registry.ProcessRunning(rec.PID) {
			live = append(live, rec)
		}
	}
	return live, nil
}
