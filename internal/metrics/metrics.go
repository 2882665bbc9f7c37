package metrics

import (
	"github.com/kurochkinivan/device_onboarder/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "device_onboarder"

type Metrics struct {
	batches      *prometheus.CounterVec
	outcomes     *prometheus.CounterVec
	skippedRows  *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Total number of processed asset files",
			},
			[]string{"market", "result"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "device_outcomes_total",
				Help:      "Total number of device creation calls by outcome",
			},
			[]string{"market", "status"},
		),
		skippedRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "skipped_rows_total",
				Help:      "Total number of CSV rows skipped as invalid",
			},
			[]string{"market"},
		),
		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "device_call_duration_seconds",
				Help:      "Duration of device creation calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(m.batches, m.outcomes, m.skippedRows, m.callDuration)

	return m
}

func (m *Metrics) ObserveBatch(result *domain.BatchResult) {
	status := "done"
	switch {
	case result.Aborted:
		status = "aborted"
	case result.Err != nil:
		status = "error"
	}

	m.batches.WithLabelValues(result.Market, status).Inc()
	m.skippedRows.WithLabelValues(result.Market).Add(float64(result.SkippedCount()))

	for _, o := range result.Outcomes {
		m.outcomes.WithLabelValues(result.Market, string(o.Status)).Inc()
		m.callDuration.WithLabelValues(string(o.Status)).Observe(o.Duration.Seconds())
	}
}
