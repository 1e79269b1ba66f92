package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess помечает успешные операции
	OutcomeSuccess = "success"
	// OutcomeInvalid помечает отклоненные некорректные запросы
	OutcomeInvalid = "invalid"
	// OutcomeError помечает ошибки хранилища и зависимостей
	OutcomeError = "error"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safemap",
			Name:      "queries_total",
			Help:      "Total number of record queries, partitioned by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	queryDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "safemap",
			Name:      "query_duration_seconds",
			Help:      "Record query latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	cacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safemap",
			Name:      "cache_lookups_total",
			Help:      "List cache lookups by result.",
		},
		[]string{"result"},
	)

	geocodingResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "safemap",
			Name:      "geocoding_results_total",
			Help:      "Geocoding attempts by result (ok, failed, retry).",
		},
		[]string{"result"},
	)

	dangerZones = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "safemap",
			Name:      "danger_zones",
			Help:      "Number of danger zones produced per computation.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)
)

// Register подключает коллекторы к переданному регистратору
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		queriesTotal,
		queryDurationSeconds,
		cacheLookupsTotal,
		geocodingResultsTotal,
		dangerZones,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveQuery фиксирует длительность и исход запроса
func ObserveQuery(operation string, duration time.Duration, outcome string) {
	queriesTotal.WithLabelValues(operation, outcome).Inc()
	queryDurationSeconds.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveCache фиксирует попадание или промах кеша
func ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveDangerZones фиксирует количество построенных зон
func ObserveDangerZones(count int) {
	dangerZones.Observe(float64(count))
}

// ObserveGeocoding фиксирует результат геокодирования одной записи
func ObserveGeocoding(result string) {
	geocodingResultsTotal.WithLabelValues(result).Inc()
}
