// Package mcpbridge exposes the RPC operations as MCP tools over stdio so
// agent tooling can reach a running host without knowing its port.
//
// The bridge is a thin transport with no business logic of its own: every
// tool call re-discovers the server and delegates to the RPC client, and
// every failure — discovery, transport or in-band — is reported as an
// {ok:false,error} JSON payload rather than an MCP protocol error.
package mcpbridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lpmwfx/UEServer/internal/client"
	"github.com/lpmwfx/UEServer/internal/logging"
	"github.com/lpmwfx/UEServer/internal/rpc"
)

// Bridge wires discovery and the RPC client into an MCP tool server.
type Bridge struct {
	projectDir string
	host       string
	timeout    time.Duration
	log        *slog.Logger

	// discovery seams for tests
	discoverProject func(string) (port int, err error)
	discoverAll     func() ([]byte, error)
}

// New creates a bridge discovering through the given project directory.
func New(projectDir, host string, timeout time.Duration) *Bridge {
	b := &Bridge{
		projectDir: projectDir,
		host:       host,
		timeout:    timeout,
		log:        logging.WithComponent("mcp-bridge"),
	}
	b.discoverProject = func(dir string) (int, error) {
		rec, err := client.DiscoverProject(dir)
		if err != nil {
			return 0, err
		}
		return rec.Port, nil
	}
	b.discoverAll = func() ([]byte, error) {
		recs, err := client.DiscoverAll()
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]any{"ok": true, "instances": recs})
	}
	return b
}

// Server builds the MCP server with all ue_* tools registered.
func (b *Bridge) Server() *server.MCPServer {
	s := server.NewMCPServer("ueserver", rpc.Version)

	s.AddTool(mcp.Tool{
		Name:        "ue_ping",
		Description: "Check connectivity to the running host and report its server version",
		InputSchema: mcp.ToolInputSchema{Type: "object"},
	}, b.handlePing)

	s.AddTool(mcp.Tool{
		Name:        "ue_get_tree",
		Description: "Snapshot the host's widget tree, bounded to max_depth levels",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"max_depth": map[string]any{"type": "number", "description": "Maximum recursion depth (default 10)"},
			},
		},
	}, b.handleGetTree)

	s.AddTool(mcp.Tool{
		Name:        "ue_get_widget",
		Description: "Fetch one widget subtree by slash-separated type path, e.g. MainFrame/MenuBar/File",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"path":      map[string]any{"type": "string", "description": "Slash-separated widget type path"},
				"max_depth": map[string]any{"type": "number", "description": "Maximum recursion depth (default 10)"},
			},
			Required: []string{"path"},
		},
	}, b.handleGetWidget)

	s.AddTool(mcp.Tool{
		Name:        "ue_instances",
		Description: "List the running host instances registered on this machine",
		InputSchema: mcp.ToolInputSchema{Type: "object"},
	}, b.handleInstances)

	return s
}

// ServeStdio runs the bridge on stdin/stdout until the client disconnects.
func (b *Bridge) ServeStdio() error {
	b.log.Info("serving MCP on stdio", "project", b.projectDir)
	return server.ServeStdio(b.Server())
}

func (b *Bridge) newClient() (*client.Client, error) {
	port, err := b.discoverProject(b.projectDir)
	if err != nil {
		return nil, err
	}
	return &client.Client{Host: b.host, Port: port, Timeout: b.timeout}, nil
}

// call runs one RPC and wraps the outcome as MCP text content.
func (b *Bridge) call(req *rpc.Request) (*mcp.CallToolResult, error) {
	c, err := b.newClient()
	if err != nil {
		return errResult(err), nil
	}
	resp, err := c.Call(req)
	if err != nil {
		return errResult(err), nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (b *Bridge) handlePing(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return b.call(&rpc.Request{Op: "ping"})
}

func (b *Bridge) handleGetTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxDepth := int(request.GetFloat("max_depth", rpc.DefaultMaxDepth))
	return b.call(&rpc.Request{Op: "ui.get_tree", MaxDepth: &maxDepth})
}

func (b *Bridge) handleGetWidget(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxDepth := int(request.GetFloat("max_depth", rpc.DefaultMaxDepth))
	return b.call(&rpc.Request{
		Op:       "ui.get_widget",
		Path:     request.GetString("path", ""),
		MaxDepth: &maxDepth,
	})
}

func (b *Bridge) handleInstances(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := b.discoverAll()
	if err != nil {
		return errResult(err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func errResult(err error) *mcp.CallToolResult {
	payload, _ := json.Marshal(map[string]any{
		"ok":    false,
		"error": err.Error(),
		"hint":  "ensure the host is running with the ueserver module enabled",
	})
	return mcp.NewToolResultText(string(payload))
}
