package main

type TreeCmd struct {
	MaxDepth int `help:"Levels of children to include (0 = roots only)." default:"-1"`
}

func (c *TreeCmd) Run(g *Globals) error {
	cl, err := resolveClient(g)
	if err != nil {
		return err
	}
	resp, err := cl.GetTree(c.MaxDepth)
	if err != nil {
		return err
	}
	return printResponse(resp)
}
