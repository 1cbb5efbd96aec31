package services

import (
	"sort"
	"strings"

	"github.com/medtechmfg/bomkit/pkg/application/dto"
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// categoryPriority orders export line items in physical-assembly order:
// structural body first, hardware last, anything unrecognized after that.
var categoryPriority = []string{
	"SINK",
	"BASIN",
	"LEGS",
	"FEET",
	"PEGBOARD",
	"FAUCET",
	"SPRAYER",
	"CONTROL",
	"ACCESSORY",
	"HARDWARE",
}

var categoryRank = func() map[string]int {
	ranks := make(map[string]int, len(categoryPriority))
	for i, category := range categoryPriority {
		ranks[category] = i
	}
	return ranks
}()

// AggregationService turns expanded trees into deduplicated, sorted,
// export-ready line item lists
type AggregationService struct{}

// NewAggregationService creates a new aggregation service
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// FlattenTree emits every node of the tree as a flat line item in pre-order,
// composite and leaf alike, tagged with the given origin source. Duplicates
// are not merged; each line keeps its own level for indented exports.
func (s *AggregationService) FlattenTree(root *entities.ResolvedNode, source string) []entities.LineItem {
	if root == nil {
		return nil
	}

	items := make([]entities.LineItem, 0, root.Count())
	root.Walk(func(node *entities.ResolvedNode) {
		items = append(items, entities.LineItem{
			ID:          node.ID,
			Description: node.Name,
			Quantity:    node.Quantity,
			Category:    node.Category,
			Kind:        node.Kind,
			Level:       node.Level,
			Source:      source,
		})
	})
	return items
}

// FlattenResult flattens every tree of a BOM generation run, tagging each
// line with its selection's origin source
func (s *AggregationService) FlattenResult(result *dto.BOMResult) []entities.LineItem {
	var items []entities.LineItem
	for _, exp := range result.Expanded {
		items = append(items, s.FlattenTree(exp.Node, exp.Selection.Source)...)
	}
	return items
}

// Aggregate merges line items by identifier: quantities are summed, source
// tags unioned, and the category normalized to uppercase. Categories are
// expected to agree across duplicates; the first occurrence wins when they
// do not. Output preserves first-occurrence order.
func (s *AggregationService) Aggregate(items []entities.LineItem) []entities.AggregatedLineItem {
	merged := make(map[entities.CatalogID]*entities.AggregatedLineItem, len(items))
	sources := make(map[entities.CatalogID]map[string]bool, len(items))
	order := make([]entities.CatalogID, 0, len(items))

	for _, item := range items {
		agg, exists := merged[item.ID]
		if !exists {
			agg = &entities.AggregatedLineItem{
				ID:          item.ID,
				Description: item.Description,
				Category:    normalizeCategory(item.Category),
			}
			merged[item.ID] = agg
			sources[item.ID] = make(map[string]bool)
			order = append(order, item.ID)
		}
		agg.Quantity += item.Quantity
		if item.Source != "" {
			sources[item.ID][item.Source] = true
		}
	}

	result := make([]entities.AggregatedLineItem, 0, len(order))
	for _, id := range order {
		agg := merged[id]
		tags := make([]string, 0, len(sources[id]))
		for tag := range sources[id] {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		agg.Sources = tags
		result = append(result, *agg)
	}
	return result
}

// MergeAggregated merges already-aggregated lists, for callers combining
// several builds into one procurement view. Passing a single merged list
// through again is a no-op, which is what makes the aggregate-then-sort
// pipeline idempotent.
func (s *AggregationService) MergeAggregated(lists ...[]entities.AggregatedLineItem) []entities.AggregatedLineItem {
	merged := make(map[entities.CatalogID]*entities.AggregatedLineItem)
	sources := make(map[entities.CatalogID]map[string]bool)
	var order []entities.CatalogID

	for _, list := range lists {
		for _, item := range list {
			agg, exists := merged[item.ID]
			if !exists {
				agg = &entities.AggregatedLineItem{
					ID:          item.ID,
					Description: item.Description,
					Category:    normalizeCategory(item.Category),
				}
				merged[item.ID] = agg
				sources[item.ID] = make(map[string]bool)
				order = append(order, item.ID)
			}
			agg.Quantity += item.Quantity
			for _, tag := range item.Sources {
				sources[item.ID][tag] = true
			}
		}
	}

	result := make([]entities.AggregatedLineItem, 0, len(order))
	for _, id := range order {
		agg := merged[id]
		tags := make([]string, 0, len(sources[id]))
		for tag := range sources[id] {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		agg.Sources = tags
		result = append(result, *agg)
	}
	return result
}

// SortByCategoryPriority stably sorts aggregated items by the fixed category
// table, unknown categories last, with ties broken lexically by identifier
func (s *AggregationService) SortByCategoryPriority(items []entities.AggregatedLineItem) []entities.AggregatedLineItem {
	sorted := make([]entities.AggregatedLineItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri := rankOf(sorted[i].Category)
		rj := rankOf(sorted[j].Category)
		if ri != rj {
			return ri < rj
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func rankOf(category string) int {
	if rank, ok := categoryRank[normalizeCategory(category)]; ok {
		return rank
	}
	return len(categoryPriority)
}

func normalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}
