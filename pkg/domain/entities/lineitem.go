package entities

import "fmt"

// Selection is one top-level line of an order configuration: a chosen sink
// model, basin kit, accessory kit, etc. Source is the origin-type tag carried
// through to aggregation (e.g. "SINK_BODY", "BASIN_KIT").
type Selection struct {
	ID       CatalogID
	Quantity Quantity
	Source   string
}

// NewSelection creates a validated Selection
func NewSelection(id CatalogID, quantity Quantity, source string) (*Selection, error) {
	if id == "" {
		return nil, fmt.Errorf("selection id cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("selection quantity must be positive, got %d", quantity)
	}

	return &Selection{
		ID:       id,
		Quantity: quantity,
		Source:   source,
	}, nil
}

// LineItem is one flattened row of an expanded tree. Level is the depth of
// the originating node, kept for indentation in hierarchical exports.
type LineItem struct {
	ID          CatalogID
	Description string
	Quantity    Quantity
	Category    string
	Kind        NodeKind
	Level       int
	Source      string
}

// AggregatedLineItem is one merged export row: quantities summed across every
// occurrence of the identifier, with the union of contributing source tags.
type AggregatedLineItem struct {
	ID          CatalogID
	Description string
	Quantity    Quantity
	Category    string
	Sources     []string
}
