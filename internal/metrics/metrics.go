// Package metrics exposes Prometheus collectors for calculator traffic.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Osdag/internal/validate"
)

const (
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

type Metrics struct {
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		calculations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osdag",
			Name:      "calculations_total",
			Help:      "Calculations evaluated, by kind and outcome status.",
		}, []string{"kind", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "osdag",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent validating and evaluating a calculation.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"kind"}),
	}
}

// Observe records one calculation. A nil *Metrics is a no-op.
func (m *Metrics) Observe(kind, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(kind, outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Outcome picks the label for a finished calculation: the status on
// success, otherwise the error class.
func Outcome(status string, err error) string {
	switch {
	case err == nil:
		return status
	case errors.Is(err, validate.ErrInvalidInput):
		return OutcomeInvalidInput
	default:
		return OutcomeError
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
