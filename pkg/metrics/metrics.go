// Package metrics holds the shared pieces of the service's Prometheus and
// OpenTelemetry metrics setup.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Namespace prefixes every metric the service registers itself.
const Namespace = "scanguard"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// TaskBuckets are histogram buckets in seconds for scan task durations, which
// range from sub-second checks to soak tests running for many minutes.
var TaskBuckets = []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600} //nolint: gochecknoglobals

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through the given Prometheus registerer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
