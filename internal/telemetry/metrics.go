package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/wolfeidau/records"
)

// Metrics holds the OpenTelemetry instruments for record operations.
type Metrics struct {
	RecordsCreatedTotal   metric.Int64Counter
	RecordsUpdatedTotal   metric.Int64Counter
	RecordsListedTotal    metric.Int64Counter
	RecordConflictsTotal  metric.Int64Counter
	RecordsNotFoundTotal  metric.Int64Counter
	ValidationErrorsTotal metric.Int64Counter
}

var (
	once    sync.Once
	metrics *Metrics
)

// GetMetrics returns the singleton Metrics instance, initializing it if necessary.
// Until InitTelemetry installs a meter provider the instruments are no-ops.
func GetMetrics() *Metrics {
	once.Do(func() {
		metrics = initMetrics()
	})
	return metrics
}

func initMetrics() *Metrics {
	meter := otel.GetMeterProvider().Meter(meterName)

	m := &Metrics{}

	m.RecordsCreatedTotal, _ = meter.Int64Counter(
		"records.created.total",
		metric.WithDescription("Total number of records created"),
		metric.WithUnit("{record}"),
	)

	m.RecordsUpdatedTotal, _ = meter.Int64Counter(
		"records.updated.total",
		metric.WithDescription("Total number of records partially updated"),
		metric.WithUnit("{record}"),
	)

	m.RecordsListedTotal, _ = meter.Int64Counter(
		"records.listed.total",
		metric.WithDescription("Total number of records returned by list requests"),
		metric.WithUnit("{record}"),
	)

	m.RecordConflictsTotal, _ = meter.Int64Counter(
		"records.conflicts.total",
		metric.WithDescription("Total number of creates rejected because the ID already exists"),
		metric.WithUnit("{error}"),
	)

	m.RecordsNotFoundTotal, _ = meter.Int64Counter(
		"records.not_found.total",
		metric.WithDescription("Total number of lookups for an unknown ID"),
		metric.WithUnit("{error}"),
	)

	m.ValidationErrorsTotal, _ = meter.Int64Counter(
		"records.validation_errors.total",
		metric.WithDescription("Total number of payloads rejected by validation"),
		metric.WithUnit("{error}"),
	)

	return m
}

// Entity returns the measurement option tagging a data point with the record type.
func Entity(name string) metric.AddOption {
	return metric.WithAttributes(attribute.String("entity", name))
}

// Inc adds one to counter for the given entity.
func Inc(ctx context.Context, counter metric.Int64Counter, entity string) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, Entity(entity))
}
