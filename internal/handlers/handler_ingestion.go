package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/dto"
	"github.com/openfx/fxreport/internal/middleware"
	"github.com/openfx/fxreport/internal/platform/config"
)

// ingestionHandler handles HTTP requests that trigger rate imports
type ingestionHandler struct {
	ingestionService portssvc.IngestionSvc
	cfg              *config.Config
}

// newIngestionHandler creates a new ingestionHandler
func newIngestionHandler(is portssvc.IngestionSvc, cfg *config.Config) *ingestionHandler {
	return &ingestionHandler{
		ingestionService: is,
		cfg:              cfg,
	}
}

// registerIngestionRoutes registers routes that trigger rate imports
func registerIngestionRoutes(rg *gin.RouterGroup, cfg *config.Config, ingestionService portssvc.IngestionSvc) {
	h := newIngestionHandler(ingestionService, cfg)

	ingestionGroup := rg.Group("/ingestion")
	{
		ingestionGroup.POST("/ecb/import", h.triggerImport)
	}
}

// triggerImport godoc
// @Summary Trigger an ECB rate import
// @Description Downloads the ECB reference rate history and upserts triangulated rates
// @Tags ingestion
// @Accept json
// @Produce json
// @Param request body dto.TriggerImportRequest false "Optional import window"
// @Success 200 {object} dto.ImportSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /ingestion/ecb/import [post]
func (h *ingestionHandler) triggerImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TriggerImportRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		logger.Warn("Invalid import request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	since := h.cfg.ECBImportSince
	if req.Since != "" {
		parsed, err := time.Parse("2006-01-02", req.Since)
		if err != nil {
			logger.Warn("Invalid since date", slog.String("since", req.Since))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid since date format. Use YYYY-MM-DD"})
			return
		}
		since = parsed
	}

	logger.Info("Manual rate import triggered", slog.Time("since", since))
	summary, err := h.ingestionService.ImportHistory(c.Request.Context(), since)
	if err != nil {
		respondServiceError(c, logger, err, "Rate import failed")
		return
	}

	logger.Info("Manual rate import finished",
		slog.Int("tables_seen", summary.TablesSeen),
		slog.Int("records_saved", summary.RecordsSaved),
		slog.Int("records_updated", summary.RecordsUpdated),
		slog.Int("dates_skipped", summary.DatesSkipped))
	c.JSON(http.StatusOK, dto.ToImportSummaryResponse(summary))
}
