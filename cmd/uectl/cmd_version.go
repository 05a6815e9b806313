package main

import "fmt"

type VersionCmd struct{}

func (c *VersionCmd) Run(_ *Globals) error {
	fmt.Printf("uectl version %s\n", version)
	return nil
}
