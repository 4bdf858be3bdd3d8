package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"localmarket/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo, registry *prometheus.Registry) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.CheckHealth)

	if registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
}
