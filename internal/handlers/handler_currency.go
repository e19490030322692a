package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openfx/fxreport/internal/core/ports/services"
	"github.com/openfx/fxreport/internal/dto"
	"github.com/openfx/fxreport/internal/middleware"
	"github.com/openfx/fxreport/internal/platform/config"
)

// currencyHandler handles HTTP requests for application currency configuration
type currencyHandler struct {
	currencyService portssvc.ApplicationCurrencySvc
	cfg             *config.Config
}

// newCurrencyHandler creates a new currencyHandler
func newCurrencyHandler(cs portssvc.ApplicationCurrencySvc, cfg *config.Config) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		cfg:             cfg,
	}
}

// registerCurrencyRoutes registers routes related to application currency configuration
func registerCurrencyRoutes(rg *gin.RouterGroup, cfg *config.Config, currencyService portssvc.ApplicationCurrencySvc) {
	h := newCurrencyHandler(currencyService, cfg)

	currencyGroup := rg.Group("/currencies")
	{
		currencyGroup.GET("", h.listCurrencies)
		currencyGroup.GET("/details", h.listCurrencyDetails)
		currencyGroup.POST("", h.addCurrency)
		currencyGroup.DELETE("/:code", h.removeCurrency)
	}
}

// listCurrencies godoc
// @Summary List application currencies
// @Description Lists the active currencies configured for reporting
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.ApplicationCurrencyResponse
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list application currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListApplicationCurrencyResponse(currencies))
}

// listCurrencyDetails godoc
// @Summary List application currencies with data coverage
// @Description Lists active currencies joined with stored rate coverage for the base currency
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.ApplicationCurrencyDetailResponse
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /currencies/details [get]
func (h *currencyHandler) listCurrencyDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	details, err := h.currencyService.ListDetails(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currency details")
		return
	}

	responses := make([]dto.ApplicationCurrencyDetailResponse, len(details))
	for i, d := range details {
		responses[i] = dto.ToApplicationCurrencyDetailResponse(d)
	}
	c.JSON(http.StatusOK, responses)
}

// addCurrency godoc
// @Summary Add an application currency
// @Description Registers a currency for reporting, reactivating it if previously removed
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.AddApplicationCurrencyRequest true "Currency to add"
// @Success 201 {object} dto.ApplicationCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /currencies [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddApplicationCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid add currency request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	currency, err := h.currencyService.Add(c.Request.Context(), req.CurrencyCode, req.CurrencyName, req.Notes)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add application currency")
		return
	}

	logger.Info("Application currency added", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToApplicationCurrencyResponse(*currency))
}

// removeCurrency godoc
// @Summary Remove an application currency
// @Description Deactivates a configured currency; at least one currency always stays active
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 204 "Removed"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not configured"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Router /currencies/{code} [delete]
func (h *currencyHandler) removeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if len(code) != 3 {
		logger.Warn("Invalid currency code in path", slog.String("code", code))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	if err := h.currencyService.Remove(c.Request.Context(), code); err != nil {
		respondServiceError(c, logger, err, "Failed to remove application currency")
		return
	}

	logger.Info("Application currency removed", slog.String("currency_code", code))
	c.Status(http.StatusNoContent)
}
