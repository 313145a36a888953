package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayPaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gowallet_gateway_payments_total",
			Help: "Total number of payment gateway calls",
		},
		[]string{"gateway", "status"},
	)

	gatewayPaymentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gowallet_gateway_payment_duration_seconds",
			Help:    "Payment gateway call duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"gateway"},
	)
)

func observePayment(gateway string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	gatewayPaymentsTotal.WithLabelValues(gateway, status).Inc()
	gatewayPaymentDuration.WithLabelValues(gateway).Observe(time.Since(start).Seconds())
}
