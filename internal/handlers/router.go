package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Health *HealthCheckHandler
	Report *ReportHandler
	Cost   *CostHandler
	User   *UserHandler
	Log    *LogHandler
	About  *AboutHandler
}

// RegisterRoutes mounts every endpoint on e. Middleware is installed by the caller.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/", h.Health.Root)
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/report", h.Report.GetMonthlyReport)
	api.POST("/add", h.Cost.AddCost)

	api.POST("/users", h.User.CreateUser)
	api.GET("/users", h.User.ListUsers)
	api.GET("/users/:id", h.User.GetUser)

	api.GET("/logs", h.Log.ListLogs)
	api.GET("/about", h.About.About)
}
