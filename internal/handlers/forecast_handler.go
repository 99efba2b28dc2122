package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"
	"fintrack/internal/validation"

	"github.com/labstack/echo/v4"
)

// ForecastHandler serves price forecasts
type ForecastHandler struct {
	forecaster services.ForecastingServiceInterface
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecaster services.ForecastingServiceInterface) *ForecastHandler {
	return &ForecastHandler{forecaster: forecaster}
}

// GetForecast projects the price of a symbol over the configured horizon
// @Summary Forecast stock price
// @Tags Forecast
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} SuccessResponse{data=dto.ForecastResponse}
// @Failure 404 {object} errors.ErrorResponse "FORECAST_001 - Unknown symbol"
// @Failure 422 {object} errors.ErrorResponse "FORECAST_002 - Insufficient history"
// @Failure 502 {object} errors.ErrorResponse "FORECAST_003 - Price provider unavailable"
// @Router /forecast/{symbol} [get]
func (h *ForecastHandler) GetForecast(c echo.Context) error {
	symbol := c.Param("symbol")
	if err := validation.GetValidator().Var(symbol, "stock_symbol"); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid stock symbol"))
	}

	result, err := h.forecaster.Forecast(c.Request().Context(), symbol)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToForecastResponse(result),
	})
}
