package main

type PingCmd struct{}

func (c *PingCmd) Run(g *Globals) error {
	cl, err := resolveClient(g)
	if err != nil {
		return err
	}
	resp, err := cl.Ping()
	if err != nil {
		return err
	}
	return printResponse(resp)
}
