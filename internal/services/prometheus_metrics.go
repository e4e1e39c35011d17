package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	loginAttempts         *prometheus.CounterVec
	biometricAvailability *prometheus.CounterVec
	biometricDuration     prometheus.Histogram
	navigations           *prometheus.CounterVec
	navigationsRejected   *prometheus.CounterVec
	transfers             *prometheus.CounterVec
	transferAmount        prometheus.Histogram
	speechAnnouncements   *prometheus.CounterVec
	preferenceChanges     *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		loginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		biometricAvailability: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biometric_availability_checks_total",
				Help: "Total number of biometric availability checks by result",
			},
			[]string{"result"},
		),
		biometricDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "biometric_challenge_duration_milliseconds",
				Help:    "Biometric challenge duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		navigations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_navigations_total",
				Help: "Total number of screen navigations by destination",
			},
			[]string{"screen"},
		),
		navigationsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_navigations_rejected_total",
				Help: "Total number of rejected navigations by reason",
			},
			[]string{"reason"},
		),
		transfers: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfer interactions by outcome",
			},
			[]string{"outcome"},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Requested transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		speechAnnouncements: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "speech_announcements_total",
				Help: "Total number of speech announcements by language",
			},
			[]string{"language"},
		),
		preferenceChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preference_changes_total",
				Help: "Total number of preference changes by preference",
			},
			[]string{"preference"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "login.attempt":
		m.loginAttempts.WithLabelValues(tags["method"], tags["outcome"]).Inc()
	case "biometric.availability":
		m.biometricAvailability.WithLabelValues(tags["result"]).Inc()
	case "navigation":
		m.navigations.WithLabelValues(tags["screen"]).Inc()
	case "navigation.rejected":
		m.navigationsRejected.WithLabelValues(tags["reason"]).Inc()
	case "transfer":
		m.transfers.WithLabelValues(tags["outcome"]).Inc()
	case "speech.announced":
		m.speechAnnouncements.WithLabelValues(tags["language"]).Inc()
	case "preference.changed":
		m.preferenceChanges.WithLabelValues(tags["preference"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "biometric.challenge":
		m.biometricDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer.amount":
		m.transferAmount.Observe(value)
	}
}
