package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openfx/fxreport/internal/apperrors"
	portsrepo "github.com/openfx/fxreport/internal/core/ports/repositories"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/dto"
	"github.com/openfx/fxreport/internal/middleware"
	"github.com/openfx/fxreport/internal/platform/config"
)

// rateHandler handles HTTP requests for stored exchange rates
type rateHandler struct {
	rateService portssvc.RateSvc
	cfg         *config.Config
}

// newRateHandler creates a new rateHandler
func newRateHandler(rs portssvc.RateSvc, cfg *config.Config) *rateHandler {
	return &rateHandler{
		rateService: rs,
		cfg:         cfg,
	}
}

// registerRateRoutes registers routes related to stored exchange rates
func registerRateRoutes(rg *gin.RouterGroup, cfg *config.Config, rateService portssvc.RateSvc) {
	h := newRateHandler(rateService, cfg)

	rateGroup := rg.Group("/rates")
	{
		rateGroup.GET("", h.listRates)
		rateGroup.GET("/currencies", h.listTargetCurrencies)
		rateGroup.GET("/periods", h.listReportingPeriods)
	}
}

// listRates godoc
// @Summary List stored exchange rates
// @Description Lists stored daily exchange rates, optionally filtered by date range and target currencies
// @Tags rates
// @Produce json
// @Param base query string false "Base currency code" default(configured base)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param currencies query string false "Comma separated target currency codes"
// @Success 200 {array} dto.RateRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.RateFilter{
		BaseCurrency: baseCurrencyOrDefault(c, h.cfg),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			logger.Warn("Invalid from date format", slog.String("from", fromStr), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date format. Use YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			logger.Warn("Invalid to date format", slog.String("to", toStr), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date format. Use YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		logger.Warn("Invalid date range", slog.Time("from", *filter.From), slog.Time("to", *filter.To))
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before or equal to to"})
		return
	}
	filter.TargetCurrencies = splitCurrencyList(c.Query("currencies"))

	records, err := h.rateService.ListRates(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list rates")
		return
	}

	logger.Info("Listed stored rates", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, dto.ToListRateRecordResponse(records))
}

// listTargetCurrencies godoc
// @Summary List target currencies
// @Description Lists the distinct target currencies with stored rates for the base currency
// @Tags rates
// @Produce json
// @Param base query string false "Base currency code" default(configured base)
// @Success 200 {array} string
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /rates/currencies [get]
func (h *rateHandler) listTargetCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := baseCurrencyOrDefault(c, h.cfg)

	currencies, err := h.rateService.TargetCurrencies(c.Request.Context(), base)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list target currencies")
		return
	}

	c.JSON(http.StatusOK, currencies)
}

// listReportingPeriods godoc
// @Summary List reporting periods
// @Description Lists every year-month with stored data, newest first, flagged complete or in progress
// @Tags rates
// @Produce json
// @Param base query string false "Base currency code" default(configured base)
// @Success 200 {array} dto.ReportingPeriodResponse
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /rates/periods [get]
func (h *rateHandler) listReportingPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := baseCurrencyOrDefault(c, h.cfg)

	periods, err := h.rateService.ReportingPeriods(c.Request.Context(), base)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list reporting periods")
		return
	}

	responses := make([]dto.ReportingPeriodResponse, len(periods))
	for i, p := range periods {
		responses[i] = dto.ToReportingPeriodResponse(p)
	}
	c.JSON(http.StatusOK, responses)
}

// splitCurrencyList parses a comma separated currency list into trimmed,
// uppercased codes. Empty input yields nil (no filter).
func splitCurrencyList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		code := strings.ToUpper(strings.TrimSpace(p))
		if code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return codes
}

// respondServiceError maps service errors onto HTTP responses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rate store unavailable"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
