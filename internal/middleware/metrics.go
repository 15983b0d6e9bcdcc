package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lycka_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// VisitsRecorded counts page-view rows written by the analytics endpoint.
	VisitsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lycka_visits_recorded_total",
		Help: "Total number of page-view rows recorded",
	})

	// SpamTrapped counts public submissions discarded by the honeypot field.
	SpamTrapped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lycka_spam_trapped_total",
		Help: "Total number of submissions silently discarded by the honeypot",
	}, []string{"form"})
)

// InitMetrics creates the Prometheus HTTP instrumentation for the app.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
