package metrics

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/metric"
)

// RegisterAuditDropCounter exports the audit recorder's dropped-event count as an
// observable counter named <namespace>_audit_events_dropped_total. dropped is read on
// every collection and must be safe for concurrent use.
func RegisterAuditDropCounter(
	meterProvider metric.MeterProvider,
	namespace string,
	dropped func() uint64,
) error {
	meter := meterProvider.Meter(namespace)

	_, err := meter.Int64ObservableCounter(
		fmt.Sprintf("%s_audit_events_dropped_total", namespace),
		metric.WithDescription("Audit events dropped because the recorder queue was full or closed"),
		metric.WithUnit("{event}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			n := dropped()
			if n > math.MaxInt64 {
				n = math.MaxInt64
			}
			o.Observe(int64(n))
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create audit drop counter: %w", err)
	}
	return nil
}
