package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/projectboard/internal/adapters/otel"
	"github.com/emiliopalmerini/projectboard/internal/adapters/prometheus"
	"github.com/emiliopalmerini/projectboard/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestOtelExporterConformance(t *testing.T) {
	var _ ports.MetricsRecorder = (*otel.Exporter)(nil)
}

func TestOtelNoOpExporterConformance(t *testing.T) {
	var _ ports.MetricsRecorder = (*otel.NoOpExporter)(nil)
}

func TestPrometheusRecorderConformance(t *testing.T) {
	var _ ports.MetricsRecorder = (*prometheus.Recorder)(nil)
}

func TestMultiRecorderConformance(t *testing.T) {
	var _ ports.MetricsRecorder = ports.MultiRecorder(nil)
}
