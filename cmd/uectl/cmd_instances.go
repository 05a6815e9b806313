package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/lpmwfx/UEServer/internal/paths"
	"github.com/lpmwfx/UEServer/internal/registry"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

type InstancesCmd struct{}

func (c *InstancesCmd) Run(_ *Globals) error {
	instances, err := registry.ReadSwitchboard(paths.SwitchboardPath())
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		fmt.Println("No registered instances.")
		return nil
	}
	for _, rec := range instances {
		fmt.Println(formatInstance(rec, registry.ProcessRunning(rec.PID)))
	}
	return nil
}

func formatInstance(rec registry.Record, live bool) string {
	badge := green("live")
	if !live {
		badge = red("stale")
	}
	name := rec.ProjectName
	if name == "" {
		name = "(unnamed)"
	}
	line := fmt.Sprintf("%-5s  %-20s  port %-5d  pid %-6d  started %s",
		badge, name, rec.Port, rec.PID, rec.Started.Format("2006-01-02 15:04:05"))
	if rec.Project != "" {
		line += "  " + dim(rec.Project)
	}
	return line
}
