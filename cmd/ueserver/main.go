// Command ueserver runs a standalone demo host: it embeds the RPC server
// around a synthetic widget tree so external tooling (uectl, the MCP bridge,
// test harnesses) can be exercised without a real editor process.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/lpmwfx/UEServer/internal/config"
	"github.com/lpmwfx/UEServer/internal/logging"
	"github.com/lpmwfx/UEServer/internal/paths"
	"github.com/lpmwfx/UEServer/internal/registry"
	"github.com/lpmwfx/UEServer/internal/rpc"
	"github.com/lpmwfx/UEServer/internal/uitree"
)

type cli struct {
	Project string `help:"Project directory to register in." default:"."`
	Name    string `help:"Project name published to the switchboard (default: project directory name)."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("ueserver"),
		kong.Description("Demo host embedding the ueserver RPC service"),
		kong.UsageOnError(),
	)

	if err := run(&args); err != nil {
		fmt.Fprintf(os.Stderr, "ueserver: %v\n", err)
		os.Exit(1)
	}
}

func run(args *cli) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.LoggingConfig())

	project, err := filepath.Abs(args.Project)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}
	name := args.Name
	if name == "" {
		name = filepath.Base(project)
	}

	stores := []registry.Store{
		registry.NewProjectStore(paths.ProjectStatePath(project)),
		registry.NewSwitchboard(paths.SwitchboardPath(), paths.SwitchboardLockPath()),
	}

	srv := rpc.NewServer(uitree.SampleProvider(), stores, project, name)
	port, err := srv.Start()
	if err != nil {
		return err
	}
	fmt.Printf("ueserver: listening on 127.0.0.1:%d (pid %d)\n", port, os.Getpid())
	fmt.Printf("ueserver: state file %s\n", paths.ProjectStatePath(project))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("ueserver: shutting down")
	srv.Stop()
	return nil
}
