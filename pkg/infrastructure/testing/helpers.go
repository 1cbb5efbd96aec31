package testing

import (
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/repositories/memory"
)

// BuildSinkTestCatalog builds the single-basin sink scenario shared across
// the service tests: a sink body referencing a basin, a leg kit with no
// decomposed components, a nested faucet chain, per-color kit variants, and
// two cyclic assemblies.
func BuildSinkTestCatalog() *memory.CatalogRepository {
	catalog := memory.NewCatalogRepository()

	assemblies := []*entities.Assembly{
		{
			ID:           "SINK-1B",
			Name:         "Single Basin Sink",
			Type:         "ASSEMBLY",
			CategoryCode: "SINK",
			Components: []entities.ComponentRef{
				{ReferenceID: "BASIN-X", Quantity: 1},
				{ReferenceID: "LEG-KIT", Quantity: 4},
			},
		},
		{
			// Terminal composite: an assembly with no decomposed parts
			ID:           "LEG-KIT",
			Name:         "Leg Kit",
			Type:         "KIT",
			CategoryCode: "LEGS",
			Components:   []entities.ComponentRef{},
		},
		{
			ID:           "FAUCET-ASM",
			Name:         "Faucet Assembly",
			Type:         "ASSEMBLY",
			CategoryCode: "FAUCET",
			Components: []entities.ComponentRef{
				{ReferenceID: "FAUCET-SUB", Quantity: 2},
			},
		},
		{
			ID:           "FAUCET-SUB",
			Name:         "Faucet Sub-Assembly",
			Type:         "ASSEMBLY",
			CategoryCode: "FAUCET",
			Components: []entities.ComponentRef{
				{ReferenceID: "FAUCET-CARTRIDGE", Quantity: 3},
			},
		},
		{
			// Direct self-reference
			ID:   "CYC-SELF",
			Name: "Self Referencing Assembly",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "CYC-SELF", Quantity: 1},
			},
		},
		{
			// Two-step cycle: CYC-A -> CYC-B -> CYC-A
			ID:   "CYC-A",
			Name: "Cyclic Assembly A",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "CYC-B", Quantity: 1},
			},
		},
		{
			ID:   "CYC-B",
			Name: "Cyclic Assembly B",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "CYC-A", Quantity: 1},
				{ReferenceID: "BASIN-X", Quantity: 2},
			},
		},
		{
			// Shared sub-assembly used from two sibling branches
			ID:   "DUAL-BRANCH",
			Name: "Dual Branch Assembly",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "BRANCH-L", Quantity: 1},
				{ReferenceID: "BRANCH-R", Quantity: 1},
			},
		},
		{
			ID:   "BRANCH-L",
			Name: "Left Branch",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "SHARED-SUB", Quantity: 1},
			},
		},
		{
			ID:   "BRANCH-R",
			Name: "Right Branch",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "SHARED-SUB", Quantity: 2},
			},
		},
		{
			ID:   "SHARED-SUB",
			Name: "Shared Sub-Assembly",
			Type: "ASSEMBLY",
			Components: []entities.ComponentRef{
				{ReferenceID: "FAUCET-CARTRIDGE", Quantity: 1},
			},
		},
	}

	parts := []*entities.Part{
		{ID: "BASIN-X", Name: "Basin X", Type: "COMPONENT"},
		{ID: "FAUCET-CARTRIDGE", Name: "Faucet Cartridge", Type: "COMPONENT"},
		{ID: "KIT-7236-RED", Name: "Overhead Light Kit Red", Type: "COMPONENT"},
		{ID: "KIT-7236-BLUE", Name: "Overhead Light Kit Blue", Type: "COMPONENT"},
	}

	if err := catalog.Load(assemblies, parts); err != nil {
		panic("test catalog failed to load: " + err.Error())
	}
	return catalog
}
