package metrics

import (
	"net/http"
	"time"

	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects generation metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	generations        *prometheus.CounterVec
	generationDuration prometheus.Histogram
	galleryCats        prometheus.Gauge
}

var _ gallery.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder with a fresh registry that also carries the
// Go runtime and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purrfect_generations_total",
				Help: "Total number of cat generations, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "purrfect_generation_duration_seconds",
				Help:    "Time spent producing one cat, image and text calls included.",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s..64s
			},
		),
		galleryCats: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "purrfect_gallery_cats",
				Help: "Number of cats currently in the gallery.",
			},
		),
	}
}

// ObserveGeneration counts one finished generation and records its duration.
func (r *Recorder) ObserveGeneration(outcome string, d time.Duration) {
	r.generations.WithLabelValues(outcome).Inc()
	r.generationDuration.Observe(d.Seconds())
}

// SetGallerySize sets the gallery gauge.
func (r *Recorder) SetGallerySize(size int) {
	r.galleryCats.Set(float64(size))
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
