package uitree

import "testing"

func chain(depth int) *StaticNode {
	node := &StaticNode{Tag: "Leaf"}
	for i := 0; i < depth; i++ {
		node = &StaticNode{Tag: "Box", Kids: []*StaticNode{node}}
	}
	return node
}

func TestSerializeReturnsNilAtDepthBudget(t *testing.T) {
	if got := Serialize(&StaticNode{Tag: "Box"}, 3, 3); got != nil {
		t.Fatalf("Serialize() at depth = maxDepth returned %+v, want nil", got)
	}
	if got := Serialize(&StaticNode{Tag: "Box"}, 3, 5); got != nil {
		t.Fatalf("Serialize() past maxDepth returned %+v, want nil", got)
	}
}

func TestSerializeNilNode(t *testing.T) {
	if got := Serialize(nil, 10, 0); got != nil {
		t.Fatalf("Serialize(nil) = %+v, want nil", got)
	}
}

func TestSerializeRootZeroDepthKeepsRootAndChildCount(t *testing.T) {
	root := &StaticNode{Tag: "Window", Kids: []*StaticNode{
		{Tag: "Button"}, {Tag: "Button"}, {Tag: "Label"},
	}}

	snap := SerializeRoot(root, 0)
	if snap == nil {
		t.Fatal("SerializeRoot() = nil, want root snapshot")
	}
	if snap.ChildCount != 3 {
		t.Fatalf("ChildCount = %d, want 3", snap.ChildCount)
	}
	if snap.Children != nil {
		t.Fatalf("Children = %v, want nil at depth 0", snap.Children)
	}
}

func TestSerializeRootTruncatesAtMaxDepth(t *testing.T) {
	root := chain(6)

	snap := SerializeRoot(root, 3)

	depth := 0
	for cur := snap; len(cur.Children) > 0; cur = cur.Children[0] {
		depth++
	}
	if depth != 2 {
		t.Fatalf("serialized chain depth = %d, want 2 below the root", depth)
	}

	// The cut node still reports its true child count.
	cut := snap.Children[0].Children[0]
	if cut.ChildCount != 1 {
		t.Fatalf("cut node ChildCount = %d, want 1", cut.ChildCount)
	}
	if cut.Children != nil {
		t.Fatalf("cut node Children = %v, want nil", cut.Children)
	}
}

func TestSerializeCapturesProperties(t *testing.T) {
	node := &StaticNode{
		Tag:      "SButton",
		Hidden:   true,
		Disabled: true,
		Label:    "OK",
		Bounds:   Rect{X: 1, Y: 2, Width: 3, Height: 4},
	}

	snap := SerializeRoot(node, 5)
	if snap.Type != "SButton" {
		t.Fatalf("Type = %q, want %q", snap.Type, "SButton")
	}
	if snap.Visible {
		t.Fatal("Visible = true, want false")
	}
	if snap.Enabled {
		t.Fatal("Enabled = true, want false")
	}
	if snap.Text != "OK" {
		t.Fatalf("Text = %q, want %q", snap.Text, "OK")
	}
	if snap.Geometry != (Rect{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Fatalf("Geometry = %+v", snap.Geometry)
	}
}

func TestFindByPathWalksTypeTags(t *testing.T) {
	provider := SampleProvider()

	node := FindByPath(provider, "MainFrame/MenuBar/MenuItem")
	if node == nil {
		t.Fatal("FindByPath() = nil, want node")
	}
	if node.Text() != "File" {
		t.Fatalf("Text() = %q, want first MenuItem %q", node.Text(), "File")
	}
}

func TestFindByPathMisses(t *testing.T) {
	provider := SampleProvider()

	if node := FindByPath(provider, "MainFrame/Toolbar"); node != nil {
		t.Fatalf("FindByPath() = %v, want nil for unknown segment", node)
	}
	if node := FindByPath(provider, ""); node != nil {
		t.Fatalf("FindByPath(\"\") = %v, want nil", node)
	}
	if node := FindByPath(provider, "/"); node != nil {
		t.Fatalf("FindByPath(\"/\") = %v, want nil", node)
	}
}

func TestFindByPathTrimsSlashes(t *testing.T) {
	provider := SampleProvider()

	if node := FindByPath(provider, "/MainFrame/Viewport/"); node == nil {
		t.Fatal("FindByPath() = nil, want Viewport node")
	}
}
