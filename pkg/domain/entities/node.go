package entities

import "encoding/json"

// NodeKind classifies a resolved expansion node
type NodeKind int

const (
	KindAssembly NodeKind = iota
	KindPart
	KindUnknown
)

// String method for NodeKind enum
func (k NodeKind) String() string {
	switch k {
	case KindAssembly:
		return "ASSEMBLY"
	case KindPart:
		return "PART"
	case KindUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the kind as its display name
func (k NodeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ResolvedNode is one node of an expansion-output tree. Quantity is the
// effective quantity at this node: the declared component quantity multiplied
// by the cumulative quantity of every ancestor up to the expansion root.
// Nodes are created fresh on every expansion and never mutated afterwards.
type ResolvedNode struct {
	ID       CatalogID
	Name     string
	Kind     NodeKind
	Category string
	Quantity Quantity
	Level    int
	Children []*ResolvedNode
}

// Walk visits the node and every descendant in pre-order
func (n *ResolvedNode) Walk(visit func(*ResolvedNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Count returns the total number of nodes in the tree rooted at n
func (n *ResolvedNode) Count() int {
	count := 0
	n.Walk(func(*ResolvedNode) { count++ })
	return count
}
