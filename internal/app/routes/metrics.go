package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hrmslite/backend/internal/metrics"
)

// SetupMetrics exposes the Prometheus registry on /metrics.
func SetupMetrics(router *gin.Engine, m *metrics.Metrics) {
	handler := promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
	router.GET("/metrics", gin.WrapH(handler))
}
