package services

import (
	"fmt"
	"sort"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
)

// CatalogValidator provides offline integrity checks over catalog data.
// Runtime expansion tolerates every condition flagged here; the lint exists
// so data-entry errors in a hand-maintained catalog get fixed upstream.
type CatalogValidator struct{}

// NewCatalogValidator creates a new catalog validator
func NewCatalogValidator() *CatalogValidator {
	return &CatalogValidator{}
}

// ValidationResult contains the results of catalog validation
type ValidationResult struct {
	HasCycles    bool
	CyclePaths   [][]entities.CatalogID
	DualEntries  []entities.CatalogID
	DanglingRefs map[entities.CatalogID][]entities.CatalogID
	Errors       []string
}

// ValidateCatalog performs comprehensive validation on catalog data:
// assembly-graph cycles, identifiers registered as both part and assembly
// (assembly wins at runtime, but it usually indicates a data-entry error),
// and component references that resolve to no catalog entity.
func (v *CatalogValidator) ValidateCatalog(assemblies []*entities.Assembly, parts []*entities.Part) *ValidationResult {
	result := &ValidationResult{
		CyclePaths:   make([][]entities.CatalogID, 0),
		DualEntries:  make([]entities.CatalogID, 0),
		DanglingRefs: make(map[entities.CatalogID][]entities.CatalogID),
		Errors:       make([]string, 0),
	}

	assemblyIDs := make(map[entities.CatalogID]bool, len(assemblies))
	for _, asm := range assemblies {
		assemblyIDs[asm.ID] = true
	}
	partIDs := make(map[entities.CatalogID]bool, len(parts))
	for _, part := range parts {
		partIDs[part.ID] = true
	}

	// Dual registrations
	for _, part := range parts {
		if assemblyIDs[part.ID] {
			result.DualEntries = append(result.DualEntries, part.ID)
		}
	}
	sort.Slice(result.DualEntries, func(i, j int) bool {
		return result.DualEntries[i] < result.DualEntries[j]
	})

	// Dangling component references
	for _, asm := range assemblies {
		for _, comp := range asm.Components {
			if !assemblyIDs[comp.ReferenceID] && !partIDs[comp.ReferenceID] {
				result.DanglingRefs[asm.ID] = append(result.DanglingRefs[asm.ID], comp.ReferenceID)
			}
		}
	}

	// Cycles in the assembly graph
	adjacencyMap := v.buildAdjacencyMap(assemblies, assemblyIDs)
	cycles := v.detectCycles(adjacencyMap)
	result.HasCycles = len(cycles) > 0
	result.CyclePaths = cycles

	for _, cycle := range result.CyclePaths {
		result.Errors = append(result.Errors, fmt.Sprintf("assembly cycle detected: %v", cycle))
	}
	for _, id := range result.DualEntries {
		result.Errors = append(result.Errors, fmt.Sprintf("id registered as both part and assembly: %s", id))
	}
	if len(result.DanglingRefs) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("found %d assemblies with dangling component references", len(result.DanglingRefs)))
	}

	return result
}

// buildAdjacencyMap creates assembly -> referenced-assembly edges
func (v *CatalogValidator) buildAdjacencyMap(assemblies []*entities.Assembly, assemblyIDs map[entities.CatalogID]bool) map[entities.CatalogID][]entities.CatalogID {
	adjacencyMap := make(map[entities.CatalogID][]entities.CatalogID, len(assemblies))

	for _, asm := range assemblies {
		seen := make(map[entities.CatalogID]bool)
		for _, comp := range asm.Components {
			if !assemblyIDs[comp.ReferenceID] || seen[comp.ReferenceID] {
				continue
			}
			seen[comp.ReferenceID] = true
			adjacencyMap[asm.ID] = append(adjacencyMap[asm.ID], comp.ReferenceID)
		}
	}

	return adjacencyMap
}

// detectCycles uses DFS to find cycles in the assembly graph
func (v *CatalogValidator) detectCycles(adjacencyMap map[entities.CatalogID][]entities.CatalogID) [][]entities.CatalogID {
	roots := make([]entities.CatalogID, 0, len(adjacencyMap))
	for id := range adjacencyMap {
		roots = append(roots, id)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	visited := make(map[entities.CatalogID]bool)
	recursionStack := make(map[entities.CatalogID]bool)
	cycles := make([][]entities.CatalogID, 0)

	for _, root := range roots {
		if !visited[root] {
			path := make([]entities.CatalogID, 0)
			v.dfsDetectCycle(root, adjacencyMap, visited, recursionStack, path, &cycles)
		}
	}

	return cycles
}

// dfsDetectCycle performs depth-first search to detect cycles
func (v *CatalogValidator) dfsDetectCycle(
	current entities.CatalogID,
	adjacencyMap map[entities.CatalogID][]entities.CatalogID,
	visited map[entities.CatalogID]bool,
	recursionStack map[entities.CatalogID]bool,
	path []entities.CatalogID,
	cycles *[][]entities.CatalogID,
) {
	visited[current] = true
	recursionStack[current] = true
	path = append(path, current)

	for _, child := range adjacencyMap[current] {
		if !visited[child] {
			v.dfsDetectCycle(child, adjacencyMap, visited, recursionStack, path, cycles)
		} else if recursionStack[child] {
			// Found a cycle - extract the cycle path
			cycleStart := -1
			for i, id := range path {
				if id == child {
					cycleStart = i
					break
				}
			}

			if cycleStart != -1 {
				cycle := make([]entities.CatalogID, 0, len(path)-cycleStart+1)
				cycle = append(cycle, path[cycleStart:]...)
				cycle = append(cycle, child) // Close the cycle
				*cycles = append(*cycles, cycle)
			}
		}
	}

	recursionStack[current] = false
}
