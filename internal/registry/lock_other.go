//go:build !unix

package registry

import "os"

// acquireFileLock is a no-op on platforms without flock; switchboard writes
// fall back to the documented best-effort read-modify-write.
func acquireFileLock(path string) (func() error, error) {
	return func() error { return nil }, nil
}

// ProcessRunning falls back to os.FindProcess, which only fails for
// malformed pids on non-unix platforms; stale records are then filtered by
// connection attempts instead.
func ProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	_, err := os.FindProcess(pid)
	return err == nil
}
