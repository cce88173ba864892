package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter รวมของ operation หลักทั้งสามของ API
var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activities_signups_total",
		Help: "Number of successful activity signups.",
	})

	SignupRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_signup_rejections_total",
		Help: "Number of rejected signups by reason.",
	}, []string{"reason"})

	RemovalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activities_removals_total",
		Help: "Number of participants removed from activities.",
	})

	ListRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activities_list_requests_total",
		Help: "Number of activity directory listings served.",
	})
)

// MetricsHandler เปิด /metrics ด้วย promhttp ผ่าน adaptor ของ fiber
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
