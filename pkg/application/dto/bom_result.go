package dto

import (
	"github.com/google/uuid"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// ExpandedSelection pairs one top-level order selection with its expanded tree
type ExpandedSelection struct {
	Selection entities.Selection
	Node      *entities.ResolvedNode
}

// BOMResult contains the complete output of one BOM generation run
type BOMResult struct {
	RunID    uuid.UUID
	Expanded []ExpandedSelection
	// Degraded is set when the catalog store was not loaded and the
	// selections were passed through unexpanded
	Degraded bool
}

// Forest returns the expansion trees in selection order
func (r *BOMResult) Forest() []*entities.ResolvedNode {
	forest := make([]*entities.ResolvedNode, 0, len(r.Expanded))
	for _, exp := range r.Expanded {
		forest = append(forest, exp.Node)
	}
	return forest
}
