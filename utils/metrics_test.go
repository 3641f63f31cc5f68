package utils

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.ObserveSkipped("public", 2)
	m.ObserveSkipped("public", 0)
	m.ObserveResolve(true)
	m.ObserveResolve(false)
	m.ObserveResolve(false)
	m.ObserveReservation("general", "accepted")
	m.ObserveUpstream("GET", "200")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.skippedRecords.WithLabelValues("public")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolveTotal.WithLabelValues("matched")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.resolveTotal.WithLabelValues("unmatched")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservations.WithLabelValues("general", "accepted")))
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSkipped("public", 1)
	m.ObserveResolve(true)
	m.ObserveReservation("general", "failed")
	m.ObserveUpstream("POST", "500")
}
