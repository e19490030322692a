package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/dto"
	"github.com/openfx/fxreport/internal/middleware"
	"github.com/openfx/fxreport/internal/platform/config"
)

// reportHandler handles HTTP requests for monthly reports
type reportHandler struct {
	aggregationService portssvc.AggregationSvc
	summaryService     portssvc.SummarySvc
	cfg                *config.Config
}

// newReportHandler creates a new reportHandler
func newReportHandler(as portssvc.AggregationSvc, ss portssvc.SummarySvc, cfg *config.Config) *reportHandler {
	return &reportHandler{
		aggregationService: as,
		summaryService:     ss,
		cfg:                cfg,
	}
}

// registerReportRoutes registers routes related to monthly reports
func registerReportRoutes(rg *gin.RouterGroup, cfg *config.Config, aggregationService portssvc.AggregationSvc, summaryService portssvc.SummarySvc) {
	h := newReportHandler(aggregationService, summaryService, cfg)

	reportGroup := rg.Group("/reports")
	{
		reportGroup.GET("/monthly-averages", h.getMonthlyAverages)
		reportGroup.GET("/closing-rates", h.getClosingRates)
		reportGroup.GET("/monthly-summary", h.getMonthlySummary)
	}
}

// getMonthlyAverages godoc
// @Summary Monthly average rates
// @Description Computes working-day average rates per target currency for a month
// @Tags reports
// @Produce json
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Param base query string false "Base currency code" default(configured base)
// @Param currencies query string false "Comma separated target currency codes"
// @Success 200 {array} dto.MonthlyAggregateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /reports/monthly-averages [get]
func (h *reportHandler) getMonthlyAverages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := parseReportPeriod(c, logger)
	if !ok {
		return
	}
	base := baseCurrencyOrDefault(c, h.cfg)
	currencies := splitCurrencyList(c.Query("currencies"))

	averages, err := h.aggregationService.MonthlyAverages(c.Request.Context(), year, month, base, currencies)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly averages")
		return
	}

	codes := make([]string, 0, len(averages))
	for code := range averages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	responses := make([]dto.MonthlyAggregateResponse, 0, len(averages))
	for _, code := range codes {
		responses = append(responses, dto.ToMonthlyAggregateResponse(averages[code]))
	}

	logger.Info("Monthly averages computed", slog.Int("currency_count", len(responses)))
	c.JSON(http.StatusOK, responses)
}

// getClosingRates godoc
// @Summary Monthly closing rates
// @Description Returns rates stored on the last working day of a month per target currency
// @Tags reports
// @Produce json
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Param base query string false "Base currency code" default(configured base)
// @Param currencies query string false "Comma separated target currency codes"
// @Success 200 {array} dto.ClosingRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /reports/closing-rates [get]
func (h *reportHandler) getClosingRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := parseReportPeriod(c, logger)
	if !ok {
		return
	}
	base := baseCurrencyOrDefault(c, h.cfg)
	currencies := splitCurrencyList(c.Query("currencies"))

	closings, err := h.aggregationService.ClosingRates(c.Request.Context(), year, month, base, currencies)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute closing rates")
		return
	}

	codes := make([]string, 0, len(closings))
	for code := range closings {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	responses := make([]dto.ClosingRateResponse, 0, len(closings))
	for _, code := range codes {
		responses = append(responses, dto.ToClosingRateResponse(closings[code]))
	}

	logger.Info("Closing rates computed", slog.Int("currency_count", len(responses)))
	c.JSON(http.StatusOK, responses)
}

// getMonthlySummary godoc
// @Summary Monthly summary report
// @Description Joins monthly averages with closing rates and derives variance per target currency
// @Tags reports
// @Produce json
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Param base query string false "Base currency code" default(configured base)
// @Param currencies query string false "Comma separated target currency codes"
// @Success 200 {array} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /reports/monthly-summary [get]
func (h *reportHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := parseReportPeriod(c, logger)
	if !ok {
		return
	}
	base := baseCurrencyOrDefault(c, h.cfg)
	currencies := splitCurrencyList(c.Query("currencies"))

	summaries, err := h.summaryService.MonthlySummary(c.Request.Context(), year, month, base, currencies)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compose monthly summary")
		return
	}

	logger.Info("Monthly summary composed", slog.Int("row_count", len(summaries)))
	c.JSON(http.StatusOK, dto.ToListMonthlySummaryResponse(summaries))
}

// parseReportPeriod reads the required year and month query parameters.
func parseReportPeriod(c *gin.Context, logger *slog.Logger) (int, time.Month, bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		logger.Warn("Missing report period parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return 0, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		logger.Warn("Invalid year", slog.String("year", yearStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(monthStr)
	if err != nil || monthNum < 1 || monthNum > 12 {
		logger.Warn("Invalid month", slog.String("month", monthStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}
