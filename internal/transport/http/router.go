package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/smt-console/internal/services"
)

// NewRouter builds the gin engine with middleware and every console route.
func NewRouter(svc *services.ServiceOptions, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(logger))

	h := NewHandler(svc)

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	{
		tables := v1.Group("/tables")
		tables.GET("/:name", h.GetTable)
		tables.PUT("/:name", h.PutTable)

		v1.POST("/production", h.CreateProduction)

		maintenance := v1.Group("/maintenance")
		maintenance.POST("", h.CreateMaintenance)
		maintenance.GET("/summary", h.GetMaintenanceSummary)

		inventory := v1.Group("/inventory")
		inventory.POST("/movements", h.CreateMovement)
		inventory.GET("/reconciliation", h.GetReconciliation)

		checks := v1.Group("/checks/:line")
		checks.POST("/results", h.CreateCheckResults)
		checks.POST("/signatures", h.CreateSignature)
		checks.GET("/sheet", h.GetCheckSheet)

		v1.POST("/cache/clear", h.ClearCache)
	}

	return r
}
