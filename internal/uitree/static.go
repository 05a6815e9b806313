package uitree

// StaticNode is an in-memory Node used by the demo host and by tests. It
// keeps the RPC core exercisable without any real presentation layer.
type StaticNode struct {
	Tag      string
	Hidden   bool
	Disabled bool
	Bounds   Rect
	Label    string
	Kids     []*StaticNode
}

func (n *StaticNode) TypeTag() string { return n.Tag }
func (n *StaticNode) Visible() bool   { return !n.Hidden }
func (n *StaticNode) Enabled() bool   { return !n.Disabled }
func (n *StaticNode) Geometry() Rect  { return n.Bounds }
func (n *StaticNode) Text() string    { return n.Label }

func (n *StaticNode) Children() []Node {
	out := make([]Node, 0, len(n.Kids))
	for _, k := range n.Kids {
		out = append(out, k)
	}
	return out
}

// StaticProvider serves a fixed set of roots.
type StaticProvider struct {
	Initialized bool
	Windows     []*StaticNode
}

func (p *StaticProvider) Ready() bool { return p.Initialized }

func (p *StaticProvider) Roots() []Node {
	out := make([]Node, 0, len(p.Windows))
	for _, w := range p.Windows {
		out = append(out, w)
	}
	return out
}

// SampleProvider builds a small representative editor layout. The demo host
// serves it so external tooling has something real to walk.
func SampleProvider() *StaticProvider {
	return &StaticProvider{
		Initialized: true,
		Windows: []*StaticNode{
			{
				Tag:    "MainFrame",
				Bounds: Rect{Width: 1920, Height: 1080},
				Kids: []*StaticNode{
					{
						Tag:    "MenuBar",
						Bounds: Rect{Width: 1920, Height: 24},
						Kids: []*StaticNode{
							{Tag: "MenuItem", Label: "File", Bounds: Rect{Width: 48, Height: 24}},
							{Tag: "MenuItem", Label: "Edit", Bounds: Rect{X: 48, Width: 48, Height: 24}},
							{Tag: "MenuItem", Label: "Window", Bounds: Rect{X: 96, Width: 64, Height: 24}},
						},
					},
					{
						Tag:    "Viewport",
						Bounds: Rect{Y: 24, Width: 1440, Height: 1056},
					},
					{
						Tag:    "DetailsPanel",
						Bounds: Rect{X: 1440, Y: 24, Width: 480, Height: 1056},
						Kids: []*StaticNode{
							{Tag: "SearchBox", Label: "Search Details", Bounds: Rect{X: 1444, Y: 28, Width: 472, Height: 28}},
							{Tag: "PropertyList", Bounds: Rect{X: 1440, Y: 60, Width: 480, Height: 1020}},
						},
					},
				},
			},
			{
				Tag:      "OutputLog",
				Bounds:   Rect{X: 200, Y: 600, Width: 800, Height: 300},
				Disabled: false,
				Kids: []*StaticNode{
					{Tag: "TextView", Label: "LogTemp: ready", Bounds: Rect{X: 204, Y: 624, Width: 792, Height: 272}},
				},
			},
		},
	}
}
