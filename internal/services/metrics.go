package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "resume_relevance"

// Metrics records pipeline outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	evaluations        *prometheus.CounterVec
	extractionFailures *prometheus.CounterVec
	semanticFallbacks  prometheus.Counter
	feedbackFailures   prometheus.Counter
	evaluationDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Resumes evaluated, by verdict.",
		}, []string{"verdict"}),
		extractionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "extraction_failures_total",
			Help:      "Documents that produced no text, by failure kind.",
		}, []string{"kind"}),
		semanticFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "semantic_fallbacks_total",
			Help:      "Semantic scores defaulted to 0 after a provider failure.",
		}),
		feedbackFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "feedback_failures_total",
			Help:      "Feedback generations replaced by the fallback message.",
		}),
		evaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time to evaluate one resume, external calls included.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveEvaluation(verdict string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(verdict).Inc()
	m.evaluationDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveExtractionFailure(kind ExtractionFailure) {
	if m == nil {
		return
	}
	m.extractionFailures.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) ObserveSemanticFallback() {
	if m == nil {
		return
	}
	m.semanticFallbacks.Inc()
}

func (m *Metrics) ObserveFeedbackFailure() {
	if m == nil {
		return
	}
	m.feedbackFailures.Inc()
}
