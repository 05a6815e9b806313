// Package uitree defines the capability interface the RPC core uses to read
// the host's widget hierarchy, and the bounded snapshot serializer that turns
// it into JSON. The core never depends on a concrete UI framework: the host
// adapts its presentation layer to Provider and Node, and tests use the
// in-memory static tree.
package uitree

// Rect is a widget's absolute geometry.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is an opaque handle to one element of the host's widget tree.
type Node interface {
	// TypeTag identifies the concrete widget kind, e.g. "SButton".
	TypeTag() string
	Visible() bool
	Enabled() bool
	Geometry() Rect
	// Text returns the widget's display text, empty if it has none.
	Text() string
	// Children returns the ordered child handles.
	Children() []Node
}

// Provider is the host-facing entry point to the widget tree.
type Provider interface {
	// Ready reports whether the host's presentation layer is initialized.
	Ready() bool
	// Roots returns the current top-level visible widgets in the host's
	// z-order. The order is the host's, not redefined here.
	Roots() []Node
}
