// Package logging configures structured logging for ueserver.
//
// Library code never writes to stdout or stderr: the server is embedded in a
// host process that owns both, and the MCP bridge must keep stdout strictly
// for protocol frames. Everything goes to a rotating file under
// ~/.ueserver/logs instead.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lpmwfx/UEServer/internal/paths"
)

// Config holds log file configuration.
type Config struct {
	Path       string // log file path; empty means ~/.ueserver/logs/ueserver.log
	Debug      bool   // enable debug-level records
	MaxSizeMB  int    // max size in MB before rotation
	MaxBackups int    // number of old files to keep
	MaxAgeDays int    // max age in days
}

// DefaultConfig returns sensible defaults for log rotation.
func DefaultConfig() Config {
	return Config{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

var (
	mu       sync.Mutex
	root     *slog.Logger
	levelVar = new(slog.LevelVar)
)

// Init opens the rotating log writer and installs the package root logger.
// Calling it more than once is a no-op.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	if root != nil {
		return
	}
	if cfg.Debug {
		levelVar.Set(slog.LevelDebug)
	}

	path := cfg.Path
	if path == "" {
		path = filepath.Join(paths.LogsDir(), "ueserver.log")
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	root = newLogger(w)
	root.Info("logger initialized", "path", path)
}

// newLogger creates a structured logger that writes to the given writer.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// WithComponent returns a logger tagged with a component name. Before Init
// the records are discarded, which keeps library code safe to call from any
// host without setup.
func WithComponent(name string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if root == nil {
		return slog.New(slog.DiscardHandler)
	}
	return root.With("component", name)
}
