package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MappingMetrics covers the import and moderation pipeline.
type MappingMetrics struct {
	PriceItemsImportedTotal prometheus.CounterVec
	GroupsCreatedTotal      prometheus.CounterVec

	MappingsCreatedTotal prometheus.CounterVec
	DecisionsTotal       prometheus.CounterVec
	RejectReasonsTotal   prometheus.CounterVec

	PendingQueueSize prometheus.GaugeVec

	DecisionLatency prometheus.HistogramVec

	IssuesReportedTotal prometheus.CounterVec
}

func NewMappingMetrics() *MappingMetrics {
	return &MappingMetrics{
		PriceItemsImportedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_items_imported_total",
				Help: "Imported price rows",
			},
			[]string{"owner_id", "packet_id"},
		),

		GroupsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "supplier_groups_created_total",
				Help: "Supplier groups created by import",
			},
			[]string{"owner_id", "packet_id"},
		),

		MappingsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mappings_created_total",
				Help: "Mapping requests created by sellers",
			},
			[]string{"owner_id", "packet_id"},
		),

		DecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_decisions_total",
				Help: "Admin decisions by outcome",
			},
			[]string{"decision"},
		),

		RejectReasonsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_reject_reasons_total",
				Help: "Rejections by reason code",
			},
			[]string{"reason_code"},
		),

		PendingQueueSize: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "moderation_pending_queue_size",
				Help: "Mappings currently waiting for moderation",
			},
			[]string{},
		),

		DecisionLatency: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moderation_decision_latency_seconds",
				Help:    "Time from mapping creation to admin decision",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"decision"},
		),

		IssuesReportedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seller_issues_reported_total",
				Help: "Supplier-not-found issues reported by sellers",
			},
			[]string{"owner_id", "packet_id"},
		),
	}
}
