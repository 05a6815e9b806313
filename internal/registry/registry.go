// Package registry publishes discovery records so external tooling can find
// a running RPC server without a fixed port.
//
// Two store scopes exist for the same capability: ProjectStore writes a
// single-instance rpc.json inside a project directory, and Switchboard
// maintains the shared per-user file listing every running instance on the
// machine. Both implement Store so the server can register in either or both.
package registry

import "time"

// Record is the discovery metadata one server instance publishes.
// Identity key is PID: a store never holds two live records for one pid.
type Record struct {
	PID         int       `json:"pid"`
	Port        int       `json:"port"`
	Project     string    `json:"project,omitempty"`
	ProjectName string    `json:"project_name"`
	Started     time.Time `json:"started"`
}

// Store persists discovery records.
type Store interface {
	// Register publishes rec, replacing any existing record with the same
	// pid (idempotent re-registration, and crash recovery for a stale
	// record left by an earlier run under the same pid).
	Register(rec Record) error
	// Unregister removes the record for pid. Removing an absent pid is a
	// no-op, not an error.
	Unregister(pid int) error
}
