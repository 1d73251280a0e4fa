package activity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// refreshTotal counts Refresh calls by outcome: cached or refreshed
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitgrid_activity_refresh_total",
		Help: "Activity refresh calls by outcome",
	}, []string{"result"})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "habitgrid_activity_refresh_duration_seconds",
		Help:    "Duration of aggregation passes",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})

	sourceFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitgrid_activity_source_fetch_total",
		Help: "Per-source fetches by provider and result",
	}, []string{"provider", "result"})

	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitgrid_activity_provider_requests_total",
		Help: "Outbound provider requests by provider and status",
	}, []string{"provider", "status"})
)
