package metrics

import "github.com/prometheus/client_golang/prometheus"

// ContactMetrics exposes counters/histograms for the submission pipeline.
type ContactMetrics struct {
	submissionsTotal *prometheus.CounterVec
	sendSeconds      prometheus.Histogram
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atelier",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome and kind",
		}, []string{"outcome", "kind"}),
		sendSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "atelier",
			Subsystem: "contact",
			Name:      "email_send_seconds",
			Help:      "Latency of provider email sends",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.sendSeconds)
	return m
}

// ObserveSubmission records one processed submission. Outcome is one of
// accepted, invalid, provider_config_error, provider_error. Kind is
// booking or message.
func (m *ContactMetrics) ObserveSubmission(outcome string, booking bool) {
	if m == nil {
		return
	}
	kind := "message"
	if booking {
		kind = "booking"
	}
	m.submissionsTotal.WithLabelValues(outcome, kind).Inc()
}

// ObserveSendLatency records how long the provider send took.
func (m *ContactMetrics) ObserveSendLatency(seconds float64) {
	if m == nil {
		return
	}
	m.sendSeconds.Observe(seconds)
}
