package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/events"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/medtechmfg/bomkit/pkg/infrastructure/testing"
)

func TestGenerateBOM_ForestMatchesSelectionOrder(t *testing.T) {
	catalog := testhelpers.BuildSinkTestCatalog()
	svc := NewBOMService(catalog)

	selections := []*entities.Selection{
		{ID: "FAUCET-ASM", Quantity: 1, Source: "FAUCET_KIT"},
		{ID: "SINK-1B", Quantity: 2, Source: "SINK_BODY"},
		{ID: "BASIN-X", Quantity: 3, Source: "BASIN_KIT"},
	}

	result, err := svc.GenerateBOM(selections)
	if err != nil {
		t.Fatalf("Expected BOM generation to succeed: %v", err)
	}

	if result.RunID == uuid.Nil {
		t.Error("Expected a run id to be assigned")
	}
	if result.Degraded {
		t.Error("Expected a non-degraded run against a loaded catalog")
	}
	if len(result.Expanded) != 3 {
		t.Fatalf("Expected 3 trees, got %d", len(result.Expanded))
	}

	for i, sel := range selections {
		exp := result.Expanded[i]
		if exp.Selection.ID != sel.ID {
			t.Errorf("Position %d: expected selection %s, got %s", i, sel.ID, exp.Selection.ID)
		}
		if exp.Node.ID != sel.ID {
			t.Errorf("Position %d: expected tree root %s, got %s", i, sel.ID, exp.Node.ID)
		}
		if exp.Node.Level != 0 {
			t.Errorf("Position %d: expected root level 0, got %d", i, exp.Node.Level)
		}
		if exp.Node.Quantity != sel.Quantity {
			t.Errorf("Position %d: expected root quantity %d, got %d", i, sel.Quantity, exp.Node.Quantity)
		}
	}
}

func TestGenerateBOM_UnknownSelectionStaysVisible(t *testing.T) {
	catalog := testhelpers.BuildSinkTestCatalog()
	svc := NewBOMService(catalog)

	result, err := svc.GenerateBOM([]*entities.Selection{
		{ID: "NO-SUCH-MODEL", Quantity: 1, Source: "SINK_BODY"},
	})
	if err != nil {
		t.Fatalf("Expected BOM generation to succeed: %v", err)
	}
	if len(result.Expanded) != 1 {
		t.Fatalf("Expected 1 tree, got %d", len(result.Expanded))
	}
	if result.Expanded[0].Node.Kind != entities.KindUnknown {
		t.Errorf("Expected UNKNOWN node for a missing selection, got %s", result.Expanded[0].Node.Kind)
	}
}

func TestGenerateBOM_DegradedPassThrough(t *testing.T) {
	store := memory.NewCatalogRepository()
	svc := NewBOMService(store)

	selections := []*entities.Selection{
		{ID: "SINK-1B", Quantity: 2, Source: "SINK_BODY"},
		{ID: "FAUCET-ASM", Quantity: 1, Source: "FAUCET_KIT"},
	}

	result, err := svc.GenerateBOM(selections)
	if err != nil {
		t.Fatalf("Expected degraded pass-through, not an error: %v", err)
	}
	if !result.Degraded {
		t.Error("Expected result to be marked degraded")
	}
	if len(result.Expanded) != 2 {
		t.Fatalf("Expected every selection passed through, got %d", len(result.Expanded))
	}

	for i, exp := range result.Expanded {
		if exp.Node.ID != selections[i].ID {
			t.Errorf("Position %d: expected %s, got %s", i, selections[i].ID, exp.Node.ID)
		}
		if exp.Node.Kind != entities.KindUnknown {
			t.Errorf("Position %d: expected unexpanded UNKNOWN node, got %s", i, exp.Node.Kind)
		}
		if exp.Node.Quantity != selections[i].Quantity {
			t.Errorf("Position %d: expected quantity %d, got %d", i, selections[i].Quantity, exp.Node.Quantity)
		}
		if len(exp.Node.Children) != 0 {
			t.Errorf("Position %d: expected no children, got %d", i, len(exp.Node.Children))
		}
	}
}

func TestGenerateBOM_RejectsInvalidSelections(t *testing.T) {
	catalog := testhelpers.BuildSinkTestCatalog()
	svc := NewBOMService(catalog)

	testCases := []struct {
		name       string
		selections []*entities.Selection
	}{
		{"nil selection", []*entities.Selection{nil}},
		{"empty identifier", []*entities.Selection{{ID: "", Quantity: 1}}},
		{"zero quantity", []*entities.Selection{{ID: "SINK-1B", Quantity: 0}}},
		{"negative quantity", []*entities.Selection{{ID: "SINK-1B", Quantity: -1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.GenerateBOM(tc.selections); err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
		})
	}
}

func TestGenerateBOM_RecordsAuditTrail(t *testing.T) {
	catalog := testhelpers.BuildSinkTestCatalog()
	audit := events.NewInMemoryStore()
	svc := NewBOMServiceWithConfig(catalog, ExpansionConfig{Audit: audit})

	result, err := svc.GenerateBOM([]*entities.Selection{
		{ID: "SINK-1B", Quantity: 2, Source: "SINK_BODY"},
	})
	if err != nil {
		t.Fatalf("Expected BOM generation to succeed: %v", err)
	}

	trail, err := audit.Read(result.RunID.String())
	if err != nil {
		t.Fatalf("Expected audit read to succeed: %v", err)
	}
	if len(trail) != 3 {
		t.Fatalf("Expected started/expanded/completed events, got %d", len(trail))
	}
	if trail[0].Type() != events.GenerationStartedEvent {
		t.Errorf("Expected run to open with %s, got %s", events.GenerationStartedEvent, trail[0].Type())
	}
	if trail[1].Type() != events.SelectionExpandedEvent {
		t.Errorf("Expected %s, got %s", events.SelectionExpandedEvent, trail[1].Type())
	}
	if trail[2].Type() != events.GenerationCompletedEvent {
		t.Errorf("Expected run to close with %s, got %s", events.GenerationCompletedEvent, trail[2].Type())
	}

	expanded, ok := trail[1].Data().(events.SelectionExpanded)
	if !ok {
		t.Fatalf("Expected SelectionExpanded payload, got %T", trail[1].Data())
	}
	if expanded.ID != "SINK-1B" || expanded.Nodes != 3 {
		t.Errorf("Unexpected payload: %+v", expanded)
	}
}

func TestGenerateBOM_EmptySelectionList(t *testing.T) {
	catalog := testhelpers.BuildSinkTestCatalog()
	svc := NewBOMService(catalog)

	result, err := svc.GenerateBOM(nil)
	if err != nil {
		t.Fatalf("Expected empty generation to succeed: %v", err)
	}
	if len(result.Expanded) != 0 {
		t.Errorf("Expected empty forest, got %d trees", len(result.Expanded))
	}
}
