package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels, one per query.
const (
	OpSearchCountry   = "search_country"
	OpSearchYearRange = "search_year_range"
	OpRankExtreme     = "rank_extreme_events"
	OpTopCO2          = "top_co2"
	OpSortTemperature = "sort_temperature"
	OpSortGDP         = "sort_gdp_in_year"
	OpAverages        = "average_metrics"
	OpLandUse         = "urbanization_deforestation"
)

var (
	// QueriesTotal counts executed queries by operation.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climate_queries_total",
			Help: "Total number of analytical queries",
		},
		[]string{"operation"},
	)
	// QueryDuration is the in-memory execution time of a query.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "climate_query_duration_seconds",
			Help:    "Query execution latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"operation"},
	)
	RecordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "climate_records_loaded",
		Help: "Records held by the in-memory store",
	})
	RowsRejected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "climate_rows_rejected",
		Help: "Input rows dropped for an empty country or invalid year",
	})
)

// Time runs fn and records it under operation. It returns the elapsed time.
func Time(operation string, fn func()) time.Duration {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	QueriesTotal.WithLabelValues(operation).Inc()
	QueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	return elapsed
}

func ObserveLoad(records, rejected int) {
	RecordsLoaded.Set(float64(records))
	RowsRejected.Set(float64(rejected))
}
