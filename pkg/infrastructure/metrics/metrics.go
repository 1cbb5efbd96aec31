// Package metrics provides Prometheus metrics for BOM expansion
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Expansion metrics
	ExpansionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bomkit_expansions_total",
			Help: "Total number of root expansion calls",
		},
		[]string{"status"},
	)

	NodesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bomkit_nodes_resolved_total",
			Help: "Total number of resolved nodes emitted, by kind",
		},
		[]string{"kind"},
	)

	// Data quality metrics
	UnknownReferences = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bomkit_unknown_references_total",
			Help: "Total number of catalog references that resolved to UNKNOWN nodes",
		},
	)

	CyclesPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bomkit_cycles_pruned_total",
			Help: "Total number of expansion branches pruned by the cycle guard",
		},
	)

	FallbackSubstitutions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bomkit_fallback_substitutions_total",
			Help: "Total number of bare identifiers substituted with a catalog variant",
		},
	)

	// BOM generation metrics
	GenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bomkit_bom_generations_total",
			Help: "Total number of BOM generation runs",
		},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bomkit_bom_generation_duration_seconds",
			Help:    "Time taken to expand one order's selection list",
			Buckets: prometheus.DefBuckets,
		},
	)
)
