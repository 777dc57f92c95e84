package tree

// Tree holds the root and the full node graph. All structural changes go
// through ReplaceChildren so readers never observe a half-swapped child
// list; the Bubble Tea update loop is the only writer.
type Tree struct {
	Root *Node
}

func New() *Tree {
	return &Tree{Root: &Node{ID: "root", Label: "zones", Kind: KindRoot}}
}

// ReplaceChildren swaps node's children in one step and fixes up parent
// back-references. The prior children are discarded wholesale.
func (t *Tree) ReplaceChildren(node *Node, children []*Node) {
	for _, c := range children {
		c.Parent = node
	}
	node.Children = children
}

// ContainingZone walks parent references from node to the nearest zone
// node, returning nil when node sits outside any zone (root or a zone-less
// leaf). A zone node resolves to itself.
func (t *Tree) ContainingZone(node *Node) *Node {
	for n := node; n != nil; n = n.Parent {
		if n.Kind == KindZone {
			return n
		}
	}
	return nil
}

// FindZone returns the zone node with the given ID, or nil. Zone IDs are
// unique, so the first match wins.
func (t *Tree) FindZone(zoneID string) *Node {
	for _, n := range t.Root.Children {
		if n.Kind == KindZone && n.ID == zoneID {
			return n
		}
	}
	return nil
}
