// Command uectl is the controller CLI for running server instances: it
// discovers a server through its rpc.json or the switchboard, issues RPC
// calls, and can expose the same operations as an MCP stdio server.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Project string `help:"Project directory to discover the server from." default:"."`
	Port    int    `help:"Connect to this port directly, skipping discovery."`
	Host    string `help:"Server host override."`
	Timeout int    `help:"Call timeout in milliseconds."`
}

type CLI struct {
	Globals

	Ping      PingCmd      `cmd:"" help:"Check that a server is reachable"`
	Tree      TreeCmd      `cmd:"" help:"Dump the widget tree as JSON"`
	Widget    WidgetCmd    `cmd:"" help:"Fetch one widget subtree by path"`
	Instances InstancesCmd `cmd:"" help:"List all registered server instances"`
	MCP       MCPCmd       `cmd:"" name:"mcp" help:"Serve the RPC operations as MCP tools on stdio"`
	Version   VersionCmd   `cmd:"" help:"Show version"`
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("uectl"),
		kong.Description("Controller for embedded UE RPC servers"),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
