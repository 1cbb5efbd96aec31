package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/domain/repositories"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/events"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/metrics"
)

// ExpansionConfig holds configuration for the hierarchical expander
type ExpansionConfig struct {
	// Resolver handles bare identifiers with no exact catalog match;
	// nil installs the default variant resolver
	Resolver FallbackResolver
	// Logger receives data-quality warnings; nil installs a no-op logger
	Logger *zap.Logger
	// Audit receives run lifecycle events; nil disables the audit trail
	Audit events.Store
}

// ExpansionService implements the hierarchical BOM expansion algorithm:
// depth-first, pre-order, quantities multiplying down each level, with
// path-scoped cycle detection and variant fallback for bare kit identifiers.
type ExpansionService struct {
	catalog  repositories.CatalogRepository
	resolver FallbackResolver
	logger   *zap.Logger
}

// NewExpansionService creates an expansion service with default configuration
func NewExpansionService(catalog repositories.CatalogRepository) *ExpansionService {
	return NewExpansionServiceWithConfig(catalog, ExpansionConfig{})
}

// NewExpansionServiceWithConfig creates an expansion service with custom configuration
func NewExpansionServiceWithConfig(catalog repositories.CatalogRepository, config ExpansionConfig) *ExpansionService {
	resolver := config.Resolver
	if resolver == nil {
		resolver = NewVariantResolver(DefaultVariantRules(), catalog)
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ExpansionService{
		catalog:  catalog,
		resolver: resolver,
		logger:   logger,
	}
}

// Expand resolves a catalog reference into a fully expanded tree. It returns
// an error only for contract violations: a non-positive quantity or a catalog
// that never loaded. Missing and cyclic references degrade in-band to UNKNOWN
// nodes and pruned branches respectively.
func (s *ExpansionService) Expand(id entities.CatalogID, quantity entities.Quantity) (*entities.ResolvedNode, error) {
	if quantity <= 0 {
		metrics.ExpansionsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("expansion quantity must be positive, got %d", quantity)
	}
	if !s.catalog.Ready() {
		metrics.ExpansionsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("cannot expand %s: %w", id, s.catalog.LoadError())
	}

	node := s.expand(id, quantity, 0, "", make(map[entities.CatalogID]int))
	metrics.ExpansionsTotal.WithLabelValues("ok").Inc()
	return node, nil
}

// expand resolves one reference at the given depth. The visited set maps each
// identifier on the path from the expansion root to the level it first
// appeared at; revisiting an identifier on the same path closes a cycle and
// prunes the branch. It returns nil only for a pruned branch.
func (s *ExpansionService) expand(id entities.CatalogID, quantity entities.Quantity, level int, parent entities.CatalogID, visited map[entities.CatalogID]int) *entities.ResolvedNode {
	if firstLevel, seen := visited[id]; seen {
		s.logger.Warn("cycle detected, pruning branch",
			zap.String("id", string(id)),
			zap.Int("level", level),
			zap.Int("first_seen_level", firstLevel),
			zap.String("parent", string(parent)))
		metrics.CyclesPruned.Inc()
		return nil
	}

	// Copy-on-descend keeps the visited set path-scoped, so sibling branches
	// never block legitimate repeated use of the same component
	branch := make(map[entities.CatalogID]int, len(visited)+1)
	for k, v := range visited {
		branch[k] = v
	}
	branch[id] = level

	// Assembly lookup takes precedence over part lookup
	if asm, ok := s.catalog.GetAssembly(id); ok {
		return s.expandAssembly(asm, quantity, level, branch)
	}

	if substitute, ok := s.resolver.Resolve(id); ok {
		s.logger.Warn("bare identifier substituted with catalog variant",
			zap.String("requested", string(id)),
			zap.String("substitute", string(substitute)),
			zap.String("parent", string(parent)))
		metrics.FallbackSubstitutions.Inc()
		return s.expand(substitute, quantity, level, parent, branch)
	}

	if part, ok := s.catalog.GetPart(id); ok {
		metrics.NodesResolved.WithLabelValues(entities.KindPart.String()).Inc()
		return &entities.ResolvedNode{
			ID:       part.ID,
			Name:     part.Name,
			Kind:     entities.KindPart,
			Quantity: quantity,
			Level:    level,
		}
	}

	// Broken catalog reference: surface it in the output rather than
	// silently dropping it
	s.logger.Warn("unresolvable catalog reference",
		zap.String("id", string(id)),
		zap.Int("level", level),
		zap.String("parent", string(parent)))
	metrics.UnknownReferences.Inc()
	metrics.NodesResolved.WithLabelValues(entities.KindUnknown.String()).Inc()
	return &entities.ResolvedNode{
		ID:       id,
		Name:     string(id),
		Kind:     entities.KindUnknown,
		Quantity: quantity,
		Level:    level,
	}
}

func (s *ExpansionService) expandAssembly(asm *entities.Assembly, quantity entities.Quantity, level int, visited map[entities.CatalogID]int) *entities.ResolvedNode {
	node := &entities.ResolvedNode{
		ID:       asm.ID,
		Name:     asm.Name,
		Kind:     entities.KindAssembly,
		Category: asm.CategoryCode,
		Quantity: quantity,
		Level:    level,
		Children: make([]*entities.ResolvedNode, 0, len(asm.Components)),
	}

	for _, comp := range asm.Components {
		child := s.expand(comp.ReferenceID, comp.Quantity*quantity, level+1, asm.ID, visited)
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}

	metrics.NodesResolved.WithLabelValues(entities.KindAssembly.String()).Inc()
	return node
}

// MaxDepth reports the longest assembly-to-assembly chain reachable from the
// given root: 0 for an assembly with no sub-assemblies, and so on. It is an
// offline audit of catalog complexity, not part of the expansion hot path.
func (s *ExpansionService) MaxDepth(id entities.CatalogID) (int, error) {
	if !s.catalog.Ready() {
		return 0, fmt.Errorf("cannot compute depth of %s: %w", id, s.catalog.LoadError())
	}
	if !s.catalog.IsAssembly(id) {
		return 0, fmt.Errorf("%s is not an assembly", id)
	}
	return s.maxDepth(id, map[entities.CatalogID]bool{id: true}), nil
}

func (s *ExpansionService) maxDepth(id entities.CatalogID, onPath map[entities.CatalogID]bool) int {
	asm, ok := s.catalog.GetAssembly(id)
	if !ok {
		return 0
	}

	deepest := 0
	for _, comp := range asm.Components {
		if !s.catalog.IsAssembly(comp.ReferenceID) {
			continue
		}
		if onPath[comp.ReferenceID] {
			continue
		}
		onPath[comp.ReferenceID] = true
		if d := 1 + s.maxDepth(comp.ReferenceID, onPath); d > deepest {
			deepest = d
		}
		delete(onPath, comp.ReferenceID)
	}
	return deepest
}
