package services

import (
	"testing"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

func TestValidateCatalog_CleanCatalog(t *testing.T) {
	validator := NewCatalogValidator()

	assemblies := []*entities.Assembly{
		{ID: "SINK-1B", Components: []entities.ComponentRef{
			{ReferenceID: "BASIN-X", Quantity: 1},
			{ReferenceID: "LEG-KIT", Quantity: 4},
		}},
		{ID: "LEG-KIT", Components: []entities.ComponentRef{}},
	}
	parts := []*entities.Part{
		{ID: "BASIN-X"},
	}

	result := validator.ValidateCatalog(assemblies, parts)

	if result.HasCycles {
		t.Errorf("Expected no cycles, got %v", result.CyclePaths)
	}
	if len(result.DualEntries) != 0 {
		t.Errorf("Expected no dual entries, got %v", result.DualEntries)
	}
	if len(result.DanglingRefs) != 0 {
		t.Errorf("Expected no dangling refs, got %v", result.DanglingRefs)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", result.Errors)
	}
}

func TestValidateCatalog_DetectsDirectCycle(t *testing.T) {
	validator := NewCatalogValidator()

	assemblies := []*entities.Assembly{
		{ID: "CYC-SELF", Components: []entities.ComponentRef{
			{ReferenceID: "CYC-SELF", Quantity: 1},
		}},
	}

	result := validator.ValidateCatalog(assemblies, nil)

	if !result.HasCycles {
		t.Fatal("Expected direct self-reference to be reported as a cycle")
	}
	if len(result.CyclePaths) != 1 {
		t.Fatalf("Expected 1 cycle path, got %d", len(result.CyclePaths))
	}
	cycle := result.CyclePaths[0]
	if cycle[0] != "CYC-SELF" || cycle[len(cycle)-1] != "CYC-SELF" {
		t.Errorf("Expected cycle to open and close on CYC-SELF, got %v", cycle)
	}
}

func TestValidateCatalog_DetectsIndirectCycle(t *testing.T) {
	validator := NewCatalogValidator()

	assemblies := []*entities.Assembly{
		{ID: "CYC-A", Components: []entities.ComponentRef{
			{ReferenceID: "CYC-B", Quantity: 1},
		}},
		{ID: "CYC-B", Components: []entities.ComponentRef{
			{ReferenceID: "CYC-A", Quantity: 1},
		}},
	}

	result := validator.ValidateCatalog(assemblies, nil)

	if !result.HasCycles {
		t.Fatal("Expected two-step cycle to be detected")
	}
	if len(result.Errors) == 0 {
		t.Error("Expected cycle to surface in the error list")
	}
}

func TestValidateCatalog_DetectsDualRegistration(t *testing.T) {
	validator := NewCatalogValidator()

	assemblies := []*entities.Assembly{
		{ID: "SINK-1B"},
	}
	parts := []*entities.Part{
		{ID: "SINK-1B"},
		{ID: "BASIN-X"},
	}

	result := validator.ValidateCatalog(assemblies, parts)

	if len(result.DualEntries) != 1 || result.DualEntries[0] != "SINK-1B" {
		t.Errorf("Expected SINK-1B flagged as dual entry, got %v", result.DualEntries)
	}
}

func TestValidateCatalog_DetectsDanglingReferences(t *testing.T) {
	validator := NewCatalogValidator()

	assemblies := []*entities.Assembly{
		{ID: "SINK-1B", Components: []entities.ComponentRef{
			{ReferenceID: "NO-SUCH-PART", Quantity: 1},
			{ReferenceID: "BASIN-X", Quantity: 1},
		}},
	}
	parts := []*entities.Part{
		{ID: "BASIN-X"},
	}

	result := validator.ValidateCatalog(assemblies, parts)

	refs, ok := result.DanglingRefs["SINK-1B"]
	if !ok || len(refs) != 1 || refs[0] != "NO-SUCH-PART" {
		t.Errorf("Expected NO-SUCH-PART flagged as dangling under SINK-1B, got %v", result.DanglingRefs)
	}
}
