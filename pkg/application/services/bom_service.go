package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medtechmfg/bomkit/pkg/application/dto"
	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/domain/repositories"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/events"
	"github.com/medtechmfg/bomkit/pkg/infrastructure/metrics"
)

// BOMService drives the hierarchical expander over an order's flat list of
// top-level selections, producing the BOM forest for one order or build.
type BOMService struct {
	catalog  repositories.CatalogRepository
	expander *ExpansionService
	logger   *zap.Logger
	audit    events.Store
}

// NewBOMService creates a BOM service with default configuration
func NewBOMService(catalog repositories.CatalogRepository) *BOMService {
	return NewBOMServiceWithConfig(catalog, ExpansionConfig{})
}

// NewBOMServiceWithConfig creates a BOM service with custom expander configuration
func NewBOMServiceWithConfig(catalog repositories.CatalogRepository, config ExpansionConfig) *BOMService {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BOMService{
		catalog:  catalog,
		expander: NewExpansionServiceWithConfig(catalog, config),
		logger:   logger,
		audit:    config.Audit,
	}
}

// record appends to the run audit trail when one is configured
func (s *BOMService) record(streamID string, event events.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(streamID, event); err != nil {
		s.logger.Warn("failed to record audit event",
			zap.String("run_id", streamID),
			zap.String("event", event.Type()),
			zap.Error(err))
	}
}

// Expander returns the underlying hierarchical expander
func (s *BOMService) Expander() *ExpansionService {
	return s.expander
}

// GenerateBOM expands every selection at level 0 with a fresh visited set,
// preserving input order in the output forest. When the catalog store failed
// to load, the selections pass through unexpanded with a single diagnostic
// instead of aborting the batch.
func (s *BOMService) GenerateBOM(selections []*entities.Selection) (*dto.BOMResult, error) {
	started := time.Now()
	defer func() {
		metrics.GenerationDuration.Observe(time.Since(started).Seconds())
	}()
	metrics.GenerationsTotal.Inc()

	for i, sel := range selections {
		if sel == nil {
			return nil, fmt.Errorf("selection %d is nil", i)
		}
		if sel.ID == "" {
			return nil, fmt.Errorf("selection %d has an empty identifier", i)
		}
		if sel.Quantity <= 0 {
			return nil, fmt.Errorf("selection %d (%s): quantity must be positive, got %d", i, sel.ID, sel.Quantity)
		}
	}

	result := &dto.BOMResult{
		RunID:    uuid.New(),
		Expanded: make([]dto.ExpandedSelection, 0, len(selections)),
	}
	runID := result.RunID.String()
	s.record(runID, events.NewGenerationStartedEvent(runID, len(selections)))

	if !s.catalog.Ready() {
		s.logger.Error("catalog not loaded, passing selections through unexpanded",
			zap.String("run_id", result.RunID.String()),
			zap.Int("selections", len(selections)),
			zap.Error(s.catalog.LoadError()))
		result.Degraded = true
		for _, sel := range selections {
			s.record(runID, events.NewSelectionUnresolvedEvent(runID, *sel, "catalog not loaded"))
			result.Expanded = append(result.Expanded, dto.ExpandedSelection{
				Selection: *sel,
				Node: &entities.ResolvedNode{
					ID:       sel.ID,
					Name:     string(sel.ID),
					Kind:     entities.KindUnknown,
					Quantity: sel.Quantity,
				},
			})
		}
		s.record(runID, events.NewGenerationCompletedEvent(runID, len(result.Expanded), true))
		return result, nil
	}

	for _, sel := range selections {
		node, err := s.expander.Expand(sel.ID, sel.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to expand selection %s: %w", sel.ID, err)
		}
		if node == nil {
			continue
		}
		s.record(runID, events.NewSelectionExpandedEvent(runID, *sel, node.Count()))
		result.Expanded = append(result.Expanded, dto.ExpandedSelection{
			Selection: *sel,
			Node:      node,
		})
	}

	s.record(runID, events.NewGenerationCompletedEvent(runID, len(result.Expanded), false))
	s.logger.Info("BOM generated",
		zap.String("run_id", result.RunID.String()),
		zap.Int("selections", len(selections)),
		zap.Int("trees", len(result.Expanded)))
	return result, nil
}
