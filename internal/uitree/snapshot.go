package uitree

import "strings"

// Snapshot is the serialized form of one widget, produced transiently per
// request and never persisted.
type Snapshot struct {
	Type       string      `json:"type"`
	Visible    bool        `json:"visible"`
	Enabled    bool        `json:"enabled"`
	Geometry   Rect        `json:"geometry"`
	Text       string      `json:"text,omitempty"`
	ChildCount int         `json:"childCount"`
	Children   []*Snapshot `json:"children,omitempty"`
}

// Serialize captures a node and recurses into its children. It returns nil
// when the node is invalid or currentDepth has reached maxDepth, in which
// case the node contributes nothing to its parent's children. ChildCount is
// always the node's true child count, independent of how many children the
// depth budget allowed into Children.
//
// No cycle detection is performed; the host's node graph is assumed acyclic
// and maxDepth is the only non-termination guard.
func Serialize(node Node, maxDepth, currentDepth int) *Snapshot {
	if currentDepth >= maxDepth {
		return nil
	}
	return capture(node, maxDepth, currentDepth)
}

// SerializeRoot captures a top-level widget unconditionally. The depth budget
// gates recursion into children only, so maxDepth 0 still yields the root
// itself with an accurate ChildCount and no children.
func SerializeRoot(node Node, maxDepth int) *Snapshot {
	return capture(node, maxDepth, 0)
}

func capture(node Node, maxDepth, currentDepth int) *Snapshot {
	if node == nil {
		return nil
	}

	children := node.Children()
	snap := &Snapshot{
		Type:       node.TypeTag(),
		Visible:    node.Visible(),
		Enabled:    node.Enabled(),
		Geometry:   node.Geometry(),
		Text:       node.Text(),
		ChildCount: len(children),
	}

	for _, child := range children {
		if cs := Serialize(child, maxDepth, currentDepth+1); cs != nil {
			snap.Children = append(snap.Children, cs)
		}
	}
	return snap
}

// FindByPath resolves a slash-separated path of type tags, e.g.
// "MainFrame/MenuBar/File", starting from the provider's roots. Each segment
// matches the first child (in host order) whose type tag equals it. Returns
// nil if the path is empty or no widget matches.
func FindByPath(provider Provider, path string) Node {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return nil
	}

	current := findByTag(provider.Roots(), segments[0])
	for _, seg := range segments[1:] {
		if current == nil {
			return nil
		}
		current = findByTag(current.Children(), seg)
	}
	return current
}

func findByTag(nodes []Node, tag string) Node {
	for _, n := range nodes {
		if n != nil && n.TypeTag() == tag {
			return n
		}
	}
	return nil
}
