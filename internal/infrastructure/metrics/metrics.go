package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehub_http_requests_total",
			Help: "Total HTTP requests processed, by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	// CheckoutSessionsCreated counts successfully created checkout sessions.
	CheckoutSessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coursehub_checkout_sessions_created_total",
			Help: "Total payment checkout sessions created.",
		},
	)

	// PurchasesCompleted counts purchases transitioned to completed by the
	// payment webhook.
	PurchasesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coursehub_purchases_completed_total",
			Help: "Total purchases completed via the payment webhook.",
		},
	)
)

// RequestCounter is a gin middleware that increments HTTPRequestsTotal once
// per request. The route template is used rather than the raw path so the
// label set stays bounded.
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
