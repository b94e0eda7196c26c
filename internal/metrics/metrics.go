package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics holds the submission pipeline counters.
type Metrics struct {
	SubmissionsTotal   *prometheus.CounterVec
	RenamedDocuments   *prometheus.CounterVec
	UnfiledDocuments   *prometheus.CounterVec
	StatusTransitions  *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
	SubmissionDuration *prometheus.HistogramVec
}

// New creates the pipeline metrics and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "appeals_submissions_total",
			Help: "Inbound submissions by kind and result.",
		}, []string{"kind", "result"}),

		RenamedDocuments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "appeals_documents_renamed_total",
			Help: "Documents renamed to resolve filename collisions.",
		}, []string{"kind"}),

		UnfiledDocuments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "appeals_documents_unfiled_total",
			Help: "Documents for which no folder, not even the fallback, was found.",
		}, []string{"kind"}),

		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "appeals_representation_transitions_total",
			Help: "Representation status change requests by outcome.",
		}, []string{"result"}),

		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "appeals_notifications_total",
			Help: "Status change notifications dispatched.",
		}, []string{"result"}),

		SubmissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "appeals_submission_duration_seconds",
			Help:    "Time spent ingesting a submission.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{
		m.SubmissionsTotal,
		m.RenamedDocuments,
		m.UnfiledDocuments,
		m.StatusTransitions,
		m.NotificationsTotal,
		m.SubmissionDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Submission records one ingested submission.
func (m *Metrics) Submission(kind, result string, seconds float64) {
	m.SubmissionsTotal.WithLabelValues(kind, result).Inc()
	m.SubmissionDuration.WithLabelValues(kind).Observe(seconds)
}

// Documents records the renamed and unfiled counts of one submission.
func (m *Metrics) Documents(kind string, renamed, unfiled int) {
	if renamed > 0 {
		m.RenamedDocuments.WithLabelValues(kind).Add(float64(renamed))
	}
	if unfiled > 0 {
		m.UnfiledDocuments.WithLabelValues(kind).Add(float64(unfiled))
	}
}

// Transition records the outcome of a status change request.
func (m *Metrics) Transition(result string) {
	m.StatusTransitions.WithLabelValues(result).Inc()
}

// Notification records the outcome of a dispatched notification.
func (m *Metrics) Notification(result string) {
	m.NotificationsTotal.WithLabelValues(result).Inc()
}
