package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SweepMetrics holds all sweep run metrics
type SweepMetrics struct {
	// Counters
	ResourcesSeen    metric.Int64Counter
	ResourcesDeleted metric.Int64Counter
	ResourcesSkipped metric.Int64Counter
	DeletesFailed    metric.Int64Counter
	KindsFailed      metric.Int64Counter

	// Histograms
	SweepDuration metric.Float64Histogram
}

// InitSweepMetrics initializes all sweep metrics
func InitSweepMetrics(meter metric.Meter) (*SweepMetrics, error) {
	m := &SweepMetrics{}

	if err := m.initCounters(meter); err != nil {
		return nil, err
	}

	if err := m.initHistograms(meter); err != nil {
		return nil, err
	}

	return m, nil
}

// initCounters initializes counter metrics
func (m *SweepMetrics) initCounters(meter metric.Meter) error {
	var err error

	m.ResourcesSeen, err = meter.Int64Counter(
		"cloudsweep.resources.seen.total",
		metric.WithDescription("Total number of resources returned by listing calls"),
		metric.WithUnit("resources"),
	)
	if err != nil {
		return err
	}

	m.ResourcesDeleted, err = meter.Int64Counter(
		"cloudsweep.resources.deleted.total",
		metric.WithDescription("Total number of resources deleted"),
		metric.WithUnit("resources"),
	)
	if err != nil {
		return err
	}

	m.ResourcesSkipped, err = meter.Int64Counter(
		"cloudsweep.resources.skipped.total",
		metric.WithDescription("Total number of resources skipped by the filter"),
		metric.WithUnit("resources"),
	)
	if err != nil {
		return err
	}

	m.DeletesFailed, err = meter.Int64Counter(
		"cloudsweep.deletes.failed.total",
		metric.WithDescription("Total number of delete calls that failed"),
		metric.WithUnit("resources"),
	)
	if err != nil {
		return err
	}

	m.KindsFailed, err = meter.Int64Counter(
		"cloudsweep.kinds.failed.total",
		metric.WithDescription("Total number of resource kinds whose sweep was abandoned"),
		metric.WithUnit("kinds"),
	)
	if err != nil {
		return err
	}

	return nil
}

// initHistograms initializes histogram metrics
func (m *SweepMetrics) initHistograms(meter metric.Meter) error {
	var err error

	m.SweepDuration, err = meter.Float64Histogram(
		"cloudsweep.sweep.duration.seconds",
		metric.WithDescription("Duration of a full sweep run"),
		metric.WithUnit("s"),
	)
	return err
}

// Recording helpers. All are nil-safe so the engine can run unmetered.

func (m *SweepMetrics) RecordSeen(ctx context.Context, kind string, count int) {
	if m == nil {
		return
	}
	m.ResourcesSeen.Add(ctx, int64(count), metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *SweepMetrics) RecordDeleted(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.ResourcesDeleted.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *SweepMetrics) RecordSkipped(ctx context.Context, kind, reason string) {
	if m == nil {
		return
	}
	m.ResourcesSkipped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("reason", reason),
	))
}

func (m *SweepMetrics) RecordDeleteFailed(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.DeletesFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *SweepMetrics) RecordKindFailed(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.KindsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *SweepMetrics) RecordSweepDuration(ctx context.Context, seconds float64) {
	if m == nil {
		return
	}
	m.SweepDuration.Record(ctx, seconds)
}
