package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder exposes one metric family per recorded concern, so each
// family carries only the label that varies for it.
type PrometheusRecorder struct {
	challenges    *prometheus.CounterVec
	verifications *prometheus.CounterVec
	fallbacks     *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the metric families on the default
// registry, which the /metrics endpoint serves.
func NewPrometheusRecorder() Recorder {
	return newPrometheusRecorder(prometheus.DefaultRegisterer)
}

func newPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		challenges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peggate",
			Name:      "challenges_issued_total",
			Help:      "402 challenges issued, by payment token type.",
		}, []string{LabelTokenType}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peggate",
			Name:      "payment_verifications_total",
			Help:      "Payment verification verdicts.",
		}, []string{LabelOutcome}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peggate",
			Name:      "upstream_fallbacks_total",
			Help:      "Upstream reads that degraded to a fallback value.",
		}, []string{LabelUpstream}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "peggate",
			Name:      "operation_latency_seconds",
			Help:      "Latency of payment verification and upstream fetches.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", LabelUpstream}),
	}

	reg.MustRegister(r.challenges, r.verifications, r.fallbacks, r.latency)
	return r
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	switch name {
	case CounterChallengeIssued:
		p.challenges.WithLabelValues(labels[LabelTokenType]).Inc()
	case CounterVerification:
		p.verifications.WithLabelValues(labels[LabelOutcome]).Inc()
	case CounterUpstreamFallback:
		p.fallbacks.WithLabelValues(labels[LabelUpstream]).Inc()
	}
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.latency.WithLabelValues(name, labels[LabelUpstream]).Observe(d.Seconds())
}
