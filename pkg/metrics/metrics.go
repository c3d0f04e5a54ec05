package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BoardMetrics records allocation passes behind the readiness boards and the
// commit outcomes of the issuance path.
type BoardMetrics struct {
	passDuration *prometheus.HistogramVec
	passTotal    *prometheus.CounterVec
	issueSuccess prometheus.Counter
	issueFailure *prometheus.CounterVec
}

// NewBoardMetrics registers the board metrics on the provided registerer.
// A nil registerer yields a no-op instance, which keeps tests quiet.
func NewBoardMetrics(reg prometheus.Registerer) *BoardMetrics {
	if reg == nil {
		return &BoardMetrics{}
	}
	passDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "allocation_pass_duration_seconds",
		Help:    "Duration of allocation passes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"board"})
	passTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_pass_total",
		Help: "Allocation passes executed.",
	}, []string{"board"})
	issueSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "issuance_commit_success_total",
		Help: "Successful part issuance commits.",
	})
	issueFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "issuance_commit_failure_total",
		Help: "Failed part issuance commits.",
	}, []string{"reason"})
	reg.MustRegister(passDuration, passTotal, issueSuccess, issueFailure)
	return &BoardMetrics{
		passDuration: passDuration,
		passTotal:    passTotal,
		issueSuccess: issueSuccess,
		issueFailure: issueFailure,
	}
}

// ObservePass records one allocation pass for the named board.
func (m *BoardMetrics) ObservePass(board string, duration time.Duration) {
	if m == nil || m.passDuration == nil {
		return
	}
	m.passDuration.WithLabelValues(board).Observe(duration.Seconds())
	m.passTotal.WithLabelValues(board).Inc()
}

// IncIssueSuccess counts a committed issuance.
func (m *BoardMetrics) IncIssueSuccess() {
	if m == nil || m.issueSuccess == nil {
		return
	}
	m.issueSuccess.Inc()
}

// IncIssueFailure counts a failed issuance with its reason label.
func (m *BoardMetrics) IncIssueFailure(reason string) {
	if m == nil || m.issueFailure == nil {
		return
	}
	m.issueFailure.WithLabelValues(reason).Inc()
}
