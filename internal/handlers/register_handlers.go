package handlers

import (
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerRateRoutes(v1, cfg, services.Rates)
	registerReportRoutes(v1, cfg, services.Aggregation, services.Summary)
	registerCurrencyRoutes(v1, cfg, services.Currency)
	registerIngestionRoutes(v1, cfg, services.Ingestion)
}

// baseCurrencyOrDefault resolves the base currency for a request: the "base"
// query parameter when present, otherwise the deployment default.
func baseCurrencyOrDefault(c *gin.Context, cfg *config.Config) string {
	return c.DefaultQuery("base", cfg.BaseCurrency)
}
