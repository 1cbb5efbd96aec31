// Example of embedding the expansion library: build a small catalog in code,
// expand one sink configuration, and print the export-ready list.
package main

import (
	"fmt"
	"os"

	"github.com/medtechmfg/bomkit/pkg/application/services"
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/repositories/memory"
	"github.com/medtechmfg/bomkit/pkg/interfaces/cli/output"
)

func main() {
	catalog := memory.NewCatalogRepository()

	assemblies := []*entities.Assembly{
		{
			ID:           "SINK-1B-6030",
			Name:         "Single Basin Sink 60x30",
			Type:         "ASSEMBLY",
			CategoryCode: "SINK",
			Components: []entities.ComponentRef{
				{ReferenceID: "BASIN-E-DRAIN-24", Quantity: 1},
				{ReferenceID: "LEG-KIT-DL27", Quantity: 1},
				{ReferenceID: "FAUCET-KIT-WRIST", Quantity: 1},
			},
		},
		{
			ID:           "LEG-KIT-DL27",
			Name:         "Height Adjustable Leg Kit",
			Type:         "KIT",
			CategoryCode: "LEGS",
			Components: []entities.ComponentRef{
				{ReferenceID: "LEG-UPRIGHT-DL27", Quantity: 4},
				{ReferenceID: "FOOT-LEVELING", Quantity: 4},
			},
		},
	}
	parts := []*entities.Part{
		{ID: "BASIN-E-DRAIN-24", Name: "Basin 24in E-Drain", Type: "COMPONENT"},
		{ID: "LEG-UPRIGHT-DL27", Name: "Leg Upright DL27", Type: "COMPONENT"},
		{ID: "FOOT-LEVELING", Name: "Leveling Foot", Type: "COMPONENT"},
		{ID: "FAUCET-KIT-WRIST", Name: "Wrist Blade Faucet Kit", Type: "COMPONENT"},
	}

	if err := catalog.Load(assemblies, parts); err != nil {
		fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
		os.Exit(1)
	}

	bomService := services.NewBOMService(catalog)
	result, err := bomService.GenerateBOM([]*entities.Selection{
		{ID: "SINK-1B-6030", Quantity: 2, Source: "SINK_BODY"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "expansion failed: %v\n", err)
		os.Exit(1)
	}

	aggregator := services.NewAggregationService()
	aggregated := aggregator.SortByCategoryPriority(aggregator.Aggregate(aggregator.FlattenResult(result)))

	if err := output.WriteText(os.Stdout, result, aggregated); err != nil {
		fmt.Fprintf(os.Stderr, "output failed: %v\n", err)
		os.Exit(1)
	}
}
