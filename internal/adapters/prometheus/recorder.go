package prometheus

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

const namespace = "projectboard"

// Recorder keeps project board metrics on its own registry and serves them
// for scraping.
type Recorder struct {
	registry      *prometheus.Registry
	projectsTotal *prometheus.CounterVec
	people        prometheus.Histogram
	rejectedTotal prometheus.Counter
	invalidFields *prometheus.CounterVec
	storeSize     prometheus.Gauge
}

// NewRecorder creates a recorder with a fresh registry that also carries the
// Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		projectsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projects_added_total",
			Help:      "Projects accepted into the store.",
		}, []string{"status"}),
		people: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "project_people",
			Help:      "Team size of added projects.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		rejectedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_rejected_total",
			Help:      "Form submissions that failed validation.",
		}),
		invalidFields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_fields_total",
			Help:      "Invalid form fields by name.",
		}, []string{"field"}),
		storeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_projects",
			Help:      "Projects currently held in the store.",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.projectsTotal,
		r.people,
		r.rejectedTotal,
		r.invalidFields,
		r.storeSize,
	)
	return r
}

func (r *Recorder) ProjectAdded(ctx context.Context, p domain.Project) {
	r.projectsTotal.WithLabelValues(p.Status.String()).Inc()
	r.people.Observe(float64(p.People))
}

func (r *Recorder) ValidationFailed(ctx context.Context, fields []string) {
	r.rejectedTotal.Inc()
	for _, f := range fields {
		r.invalidFields.WithLabelValues(f).Inc()
	}
}

func (r *Recorder) StoreSize(ctx context.Context, n int) {
	r.storeSize.Set(float64(n))
}

func (r *Recorder) Close(ctx context.Context) error {
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
