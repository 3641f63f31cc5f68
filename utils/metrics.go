package utils

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for schedule computation and reservations.
type BookingMetrics struct {
	skippedRecords *prometheus.CounterVec
	resolveTotal   *prometheus.CounterVec
	reservations   *prometheus.CounterVec
	upstreamTotal  *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		skippedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "klinik",
			Subsystem: "schedule",
			Name:      "skipped_records_total",
			Help:      "Schedule records skipped because their window could not be parsed",
		}, []string{"source"}),
		resolveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "klinik",
			Subsystem: "schedule",
			Name:      "resolve_total",
			Help:      "Chosen slots mapped back to a schedule record",
		}, []string{"outcome"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "klinik",
			Subsystem: "booking",
			Name:      "reservations_total",
			Help:      "Reservation submissions by kind and outcome",
		}, []string{"kind", "outcome"}),
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "klinik",
			Subsystem: "clinicapi",
			Name:      "requests_total",
			Help:      "Requests sent to the clinic API",
		}, []string{"method", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.skippedRecords, m.resolveTotal, m.reservations, m.upstreamTotal)
	return m
}

func (m *BookingMetrics) ObserveSkipped(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skippedRecords.WithLabelValues(source).Add(float64(n))
}

func (m *BookingMetrics) ObserveResolve(matched bool) {
	if m == nil {
		return
	}
	outcome := "matched"
	if !matched {
		outcome = "unmatched"
	}
	m.resolveTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveReservation(kind, outcome string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(kind, outcome).Inc()
}

func (m *BookingMetrics) ObserveUpstream(method, status string) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(method, status).Inc()
}
