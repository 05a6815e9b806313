//go:build unix

package registry

import (
	"os"

	"golang.org/x/sys/unix"
)

// acquireFileLock takes an exclusive advisory flock on path, blocking until
// it is available. The returned func releases and closes.
func acquireFileLock(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}

	return func() error {
		unlockErr := unix.Flock(int(f.Fd()), unix.LOCK_UN)
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}

// ProcessRunning reports whether a process with the given pid exists.
// Signal 0 probes existence without delivering anything. Used only by
// client-side discovery filtering, never by write-time pruning.
func ProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}
