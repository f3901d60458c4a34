//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg, "test")

	m.ObserveLookup("available_slots")
	m.ObserveLookup("available_slots")
	m.ObserveMutation("create", time.Now())
	m.ObserveRejection("slot already booked")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.availabilityTotal.WithLabelValues("available_slots")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejectionsTotal.WithLabelValues("slot already booked")))
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveLookup("validate")
	m.ObserveMutation("create", time.Now())
	m.ObserveRejection("break period")
}
