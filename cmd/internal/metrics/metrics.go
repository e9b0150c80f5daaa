package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics counts what happens on the booking screen.
type BookingMetrics struct {
	submissions   *prometheus.CounterVec
	advances      *prometheus.CounterVec
	notifications *prometheus.CounterVec
	remoteCalls   *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docbook",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		advances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docbook",
			Subsystem: "booking",
			Name:      "advances_total",
			Help:      "Status-advance actions by outcome",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docbook",
			Subsystem: "booking",
			Name:      "notifications_total",
			Help:      "Notifications raised by audience",
		}, []string{"audience"}),
		remoteCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "docbook",
			Subsystem: "remote_store",
			Name:      "request_seconds",
			Help:      "Latency of remote store calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.advances, m.notifications, m.remoteCalls)
	return m
}

func (m *BookingMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveAdvance(outcome string) {
	if m == nil {
		return
	}
	m.advances.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveNotification(audience string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(audience).Inc()
}

func (m *BookingMetrics) ObserveRemoteCall(operation string, err error, seconds float64) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.remoteCalls.WithLabelValues(operation, status).Observe(seconds)
}
