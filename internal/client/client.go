// Package client is the controller side of the RPC protocol: it discovers a
// running server through its discovery files and issues one-shot
// request/response calls over TCP.
package client

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lpmwfx/UEServer/internal/rpc"
)

// DefaultTimeout bounds dial, send and receive for one call.
const DefaultTimeout = 2 * time.Second

// Client calls one server instance. The zero Host defaults to loopback.
type Client struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// New creates a client for a discovered port with default host and timeout.
func New(port int) *Client {
	return &Client{Host: "127.0.0.1", Port: port, Timeout: DefaultTimeout}
}

// Call performs one RPC round trip: dial, send one JSON object, read one
// JSON reply, close. A missing request ID is filled with a generated one.
// An ok:false reply is returned as a response, not an error; errors mean
// the transport failed.
func (c *Client) Call(req *rpc.Request) (*rpc.Response, error) {
	host := c.Host
	if host == "" {
		host = "127.0.0.1"
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if req.ID == "" {
		req.ID = requestID()
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", c.Port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("cannot reach server at %s: %w (is the host running?)", addr, err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(timeout))

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	var resp rpc.Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", addr, err)
	}
	return &resp, nil
}

// Ping checks connectivity and returns the server's version reply.
func (c *Client) Ping() (*rpc.Response, error) {
	return c.Call(&rpc.Request{Op: "ping"})
}

// GetTree fetches the widget tree bounded to maxDepth; maxDepth < 0 leaves
// the server default in place.
func (c *Client) GetTree(maxDepth int) (*rpc.Response, error) {
	req := &rpc.Request{Op: "ui.get_tree"}
	if maxDepth >= 0 {
		req.MaxDepth = &maxDepth
	}
	return c.Call(req)
}

// GetWidget fetches the subtree rooted at a slash-separated type-tag path.
func (c *Client) GetWidget(path string, maxDepth int) (*rpc.Response, error) {
	req := &rpc.Request{Op: "ui.get_widget", Path: path}
	if maxDepth >= 0 {
		req.MaxDepth = &maxDepth
	}
	return c.Call(req)
}

// requestID generates a short correlation id, e.g. "cli-3f9c01ab72de".
func requestID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "cli-" + hex[:12]
}
