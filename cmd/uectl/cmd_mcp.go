package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lpmwfx/UEServer/internal/config"
	"github.com/lpmwfx/UEServer/internal/mcpbridge"
)

type MCPCmd struct{}

func (c *MCPCmd) Run(g *Globals) error {
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
	project, err := filepath.Abs(g.Project)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	return mcpbridge.New(project, host, timeout).ServeStdio()
}
