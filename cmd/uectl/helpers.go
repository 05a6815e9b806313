package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lpmwfx/UEServer/internal/client"
	"github.com/lpmwfx/UEServer/internal/config"
	"github.com/lpmwfx/UEServer/internal/rpc"
)

// resolveClient builds a client from flags, config defaults, and discovery.
// An explicit --port skips discovery entirely.
func resolveClient(g *Globals) (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
		cfg = config.Default()
	}

	host := g.Host
	if host == "" {
		host = cfg.Client.Host
	}
	timeout := cfg.Timeout()
	if g.Timeout > 0 {
		timeout = time.Duration(g.Timeout) * time.Millisecond
	}

	port := g.Port
	if port == 0 {
		project, err := filepath.Abs(g.Project)
		if err != nil {
			return nil, fmt.Errorf("resolving project directory: %w", err)
		}
		rec, err := client.DiscoverProject(project)
		if err != nil {
			return nil, err
		}
		port = rec.Port
	}

	return &client.Client{Host: host, Port: port, Timeout: timeout}, nil
}

// printResponse writes the raw reply as indented JSON. An ok:false reply
// becomes a command error after printing, so scripts see exit status 1.
func printResponse(resp *rpc.Response) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !resp.OK {
		return fmt.Errorf("server returned an error: %s", resp.Error)
	}
	return nil
}
