// Package paths centralizes the on-disk locations used by ueserver:
// the per-user ~/.ueserver directory (switchboard, config, logs) and the
// per-project .ueserver directory (runtime state file).
package paths

import (
	"os"
	"path/filepath"
)

// DirName is the dot-directory used at both user and project scope.
const DirName = ".ueserver"

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// UserDir returns the per-user ueserver directory (~/.ueserver).
// UESERVER_HOME overrides it, which tests and sandboxed hosts rely on.
func UserDir() string {
	if v := os.Getenv("UESERVER_HOME"); v != "" {
		return v
	}
	return filepath.Join(homeDir(), DirName)
}

// SwitchboardPath returns the shared multi-instance discovery file.
func SwitchboardPath() string {
	return filepath.Join(UserDir(), "switchboard.json")
}

// SwitchboardLockPath returns the advisory lock file guarding switchboard writes.
func SwitchboardLockPath() string {
	return filepath.Join(UserDir(), "switchboard.lock")
}

// ConfigFile returns the path to config.toml.
func ConfigFile() string {
	return filepath.Join(UserDir(), "config.toml")
}

// LogsDir returns the directory for rotating log files.
func LogsDir() string {
	return filepath.Join(UserDir(), "logs")
}

// ProjectDir returns the project-scoped state directory (<project>/.ueserver).
func ProjectDir(projectDir string) string {
	return filepath.Join(projectDir, DirName)
}

// ProjectStatePath returns the single-instance discovery file for a project.
func ProjectStatePath(projectDir string) string {
	return filepath.Join(ProjectDir(projectDir), "rpc.json")
}

// EnsureDir creates a directory and parents if needed.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o700)
}
