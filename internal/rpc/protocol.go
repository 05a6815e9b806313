// Package rpc implements the JSON-RPC-over-TCP core embedded in the host:
// the wire envelope, the operation dispatcher, and the listener/server
// lifecycle bound to the host process.
//
// The wire protocol is one TCP connection per call: the client sends a
// single UTF-8 JSON object, the server reads it in one receive (up to 4096
// bytes — larger requests are not supported), answers with a single
// newline-terminated JSON object, and closes the connection.
package rpc

import (
	"encoding/json"

	"github.com/lpmwfx/UEServer/internal/uitree"
)

// Version is reported in the ping reply.
const Version = "0.1.0"

// MaxRequestSize is the fixed receive buffer. A request must fit in one read.
const MaxRequestSize = 4096

// DefaultMaxDepth bounds tree serialization when the client does not ask.
const DefaultMaxDepth = 10

// Request is the flat request envelope. Op selects the handler; ID, when
// present, is opaque and echoed verbatim; the remaining fields are
// op-specific parameters. Unknown fields are ignored.
type Request struct {
	Op       string `json:"op"`
	ID       string `json:"id,omitempty"`
	MaxDepth *int   `json:"max_depth,omitempty"`
	Path     string `json:"path,omitempty"`
}

// Response is the reply envelope. OK=false implies Error is set; OK=true
// never carries Error. Op-specific fields are omitted when empty so each
// operation's reply carries only what it produced.
type Response struct {
	OK    bool   `json:"ok"`
	Op    string `json:"op,omitempty"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`

	// ping
	Version string `json:"version,omitempty"`

	// ui.get_tree
	Windows     []*uitree.Snapshot `json:"windows,omitempty"`
	WindowCount *int               `json:"window_count,omitempty"`

	// ui.get_widget
	Widget *uitree.Snapshot `json:"widget,omitempty"`
}

// DecodeRequest parses a single request object from raw bytes.
func DecodeRequest(raw []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// EncodeResponse serializes a response to a single JSON object. The envelope
// contains no unmarshalable types, so encoding cannot fail; a marshal error
// would be a programming bug and degrades to a generic error object.
func EncodeResponse(resp *Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		return []byte(`{"ok":false,"error":"Internal encoding error"}`)
	}
	return data
}
