package main

type WidgetCmd struct {
	Path     string `arg:"" help:"Slash-separated widget type path, e.g. MainFrame/MenuBar"`
	MaxDepth int    `help:"Levels of children to include below the widget." default:"-1"`
}

func (c *WidgetCmd) Run(g *Globals) error {
	cl, err := resolveClient(g)
	if err != nil {
		return err
	}
	resp, err := cl.GetWidget(c.Path, c.MaxDepth)
	if err != nil {
		return err
	}
	return printResponse(resp)
}
