package rpc

import (
	"fmt"
	"log/slog"

	"github.com/lpmwfx/UEServer/internal/logging"
	"github.com/lpmwfx/UEServer/internal/uitree"
)

// Handler processes one parsed request and returns its response.
type Handler func(req *Request) *Response

// Dispatcher routes a raw request to the handler registered for its op and
// guarantees that every input, however malformed, yields a well-formed reply.
type Dispatcher struct {
	provider uitree.Provider
	handlers map[string]Handler
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher with the built-in operations registered:
// ping, ui.get_tree and ui.get_widget. provider may be nil, in which case the
// ui.* operations report the UI layer as unavailable.
func NewDispatcher(provider uitree.Provider) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		handlers: make(map[string]Handler),
		log:      logging.WithComponent("rpc"),
	}
	d.Register("ping", d.handlePing)
	d.Register("ui.get_tree", d.handleGetTree)
	d.Register("ui.get_widget", d.handleGetWidget)
	return d
}

// Register adds or replaces the handler for an operation name. Handlers must
// echo the request ID verbatim when present.
func (d *Dispatcher) Register(op string, h Handler) {
	d.handlers[op] = h
}

// Dispatch decodes raw, routes it, and returns the encoded response.
// Decode failure yields {ok:false,error:"Invalid JSON"} with no op or id
// echo: those fields cannot be trusted out of an unparseable payload.
func (d *Dispatcher) Dispatch(raw []byte) []byte {
	req, err := DecodeRequest(raw)
	if err != nil {
		d.log.Debug("rejecting malformed request", "error", err)
		return EncodeResponse(&Response{OK: false, Error: "Invalid JSON"})
	}

	h, ok := d.handlers[req.Op]
	if !ok {
		return EncodeResponse(&Response{
			OK:    false,
			Op:    req.Op,
			Error: fmt.Sprintf("Unknown operation: %s", req.Op),
		})
	}

	return EncodeResponse(h(req))
}

func (d *Dispatcher) handlePing(req *Request) *Response {
	return &Response{OK: true, Op: req.Op, ID: req.ID, Version: Version}
}

func (d *Dispatcher) handleGetTree(req *Request) *Response {
	if resp := d.uiUnavailable(req); resp != nil {
		return resp
	}

	maxDepth := requestedDepth(req)
	windows := make([]*uitree.Snapshot, 0)
	for _, root := range d.provider.Roots() {
		if snap := uitree.SerializeRoot(root, maxDepth); snap != nil {
			windows = append(windows, snap)
		}
	}

	count := len(windows)
	return &Response{OK: true, Op: req.Op, ID: req.ID, Windows: windows, WindowCount: &count}
}

func (d *Dispatcher) handleGetWidget(req *Request) *Response {
	if resp := d.uiUnavailable(req); resp != nil {
		return resp
	}
	if req.Path == "" {
		return &Response{OK: false, Op: req.Op, ID: req.ID, Error: "Missing required field: path"}
	}

	node := uitree.FindByPath(d.provider, req.Path)
	if node == nil {
		return &Response{
			OK:    false,
			Op:    req.Op,
			ID:    req.ID,
			Error: fmt.Sprintf("Widget not found: %s", req.Path),
		}
	}

	return &Response{OK: true, Op: req.Op, ID: req.ID, Widget: uitree.SerializeRoot(node, requestedDepth(req))}
}

// uiUnavailable returns the host-state error reply for ui.* operations when
// the presentation layer is absent or not yet initialized, nil otherwise.
func (d *Dispatcher) uiUnavailable(req *Request) *Response {
	if d.provider == nil {
		return &Response{OK: false, Op: req.Op, ID: req.ID, Error: "UI layer not available"}
	}
	if !d.provider.Ready() {
		return &Response{OK: false, Op: req.Op, ID: req.ID, Error: "UI layer not initialized"}
	}
	return nil
}

func requestedDepth(req *Request) int {
	if req.MaxDepth == nil {
		return DefaultMaxDepth
	}
	if *req.MaxDepth < 0 {
		return 0
	}
	return *req.MaxDepth
}
