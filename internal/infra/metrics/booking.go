package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics counts availability lookups and booking outcomes.
// A nil *BookingMetrics is valid and records nothing.
type BookingMetrics struct {
	availabilityTotal *prometheus.CounterVec
	bookingsTotal     *prometheus.CounterVec
	rejectionsTotal   *prometheus.CounterVec
	bookingLatency    *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer, namespace string) *BookingMetrics {
	if namespace == "" {
		namespace = "scheduler"
	}
	m := &BookingMetrics{
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "availability",
			Name:      "queries_total",
			Help:      "Availability and validation lookups",
		}, []string{"kind"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "mutations_total",
			Help:      "Committed appointment mutations",
		}, []string{"operation"}),
		rejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "rejections_total",
			Help:      "Slot requests rejected, by reason",
		}, []string{"reason"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "write_latency_seconds",
			Help:      "Latency of the guarded write path",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.bookingsTotal, m.rejectionsTotal, m.bookingLatency)
	return m
}

func (m *BookingMetrics) ObserveLookup(kind string) {
	if m == nil {
		return
	}
	m.availabilityTotal.WithLabelValues(kind).Inc()
}

func (m *BookingMetrics) ObserveMutation(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(operation).Inc()
	m.bookingLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *BookingMetrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.rejectionsTotal.WithLabelValues(reason).Inc()
}
