package events

import (
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// GenerationStarted opens a run's stream with the selections submitted
// for expansion.
type GenerationStarted struct {
	Selections int `json:"selections"`
}

// SelectionExpanded records one resolved tree rooted at a top-level
// selection.
type SelectionExpanded struct {
	ID       entities.CatalogID `json:"id"`
	Quantity entities.Quantity  `json:"quantity"`
	Source   string             `json:"source,omitempty"`
	Nodes    int                `json:"nodes"`
}

// SelectionUnresolved records a selection that passed through without
// expansion, either because its identifier is unknown or because the
// catalog store is degraded.
type SelectionUnresolved struct {
	ID       entities.CatalogID `json:"id"`
	Quantity entities.Quantity  `json:"quantity"`
	Reason   string             `json:"reason"`
}

// GenerationCompleted closes a run's stream.
type GenerationCompleted struct {
	Trees    int  `json:"trees"`
	Degraded bool `json:"degraded"`
}

func NewGenerationStartedEvent(runID string, selections int) Event {
	return NewEvent(GenerationStartedEvent, runID, GenerationStarted{Selections: selections})
}

func NewSelectionExpandedEvent(runID string, sel entities.Selection, nodes int) Event {
	return NewEvent(SelectionExpandedEvent, runID, SelectionExpanded{
		ID:       sel.ID,
		Quantity: sel.Quantity,
		Source:   sel.Source,
		Nodes:    nodes,
	})
}

func NewSelectionUnresolvedEvent(runID string, sel entities.Selection, reason string) Event {
	return NewEvent(SelectionUnresolvedEvent, runID, SelectionUnresolved{
		ID:       sel.ID,
		Quantity: sel.Quantity,
		Reason:   reason,
	})
}

func NewGenerationCompletedEvent(runID string, trees int, degraded bool) Event {
	return NewEvent(GenerationCompletedEvent, runID, GenerationCompleted{
		Trees:    trees,
		Degraded: degraded,
	})
}
