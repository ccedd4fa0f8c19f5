package core

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"edugestao/pkg/domain"
)

// MetricsRecorder observes store operations.
type MetricsRecorder interface {
	Observe(ctx context.Context, kind domain.EntityType, operation string, success bool, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, domain.EntityType, string, bool, time.Duration) {}

// PrometheusMetricsRecorder exports operation counters and latency histograms.
type PrometheusMetricsRecorder struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewPrometheusMetricsRecorder registers the store collectors with reg.
// Collectors already registered by an earlier recorder are reused.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Entity store operations by kind, operation and result.",
	}, []string{"kind", "op", "result"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Entity store operation latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind", "op"})

	var err error
	if ops, err = register(reg, ops); err != nil {
		return nil, err
	}
	if durations, err = register(reg, durations); err != nil {
		return nil, err
	}
	return &PrometheusMetricsRecorder{operations: ops, durations: durations}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records one operation.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, kind domain.EntityType, operation string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	r.operations.WithLabelValues(string(kind), operation, result).Inc()
	r.durations.WithLabelValues(string(kind), operation).Observe(duration.Seconds())
}
