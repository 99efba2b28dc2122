package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ForecastHandlerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	forecaster *service_mocks.MockForecastingServiceInterface
	handler    *ForecastHandler
	echo       *echo.Echo
}

func (s *ForecastHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.forecaster = service_mocks.NewMockForecastingServiceInterface(s.ctrl)
	s.handler = NewForecastHandler(s.forecaster)
	s.echo = echo.New()
}

func (s *ForecastHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestForecastHandlerSuite(t *testing.T) {
	suite.Run(t, new(ForecastHandlerSuite))
}

func (s *ForecastHandlerSuite) request(symbol string) (echo.Context, int, []byte) {
	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/forecast/"+symbol, nil, "")
	c.SetParamNames("symbol")
	c.SetParamValues(symbol)
	s.Require().NoError(s.handler.GetForecast(c))
	return c, rec.Code, rec.Body.Bytes()
}

func (s *ForecastHandlerSuite) TestGetForecast_Success() {
	last := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	s.forecaster.EXPECT().Forecast(gomock.Any(), "TSLA").Return(&models.ForecastResult{
		Symbol:       "TSLA",
		Horizon:      2,
		Period:       24 * time.Hour,
		SampleCount:  3,
		LastObserved: models.PriceSample{Time: last, Price: 220},
		Slope:        10,
		Points: []models.ForecastPoint{
			{Step: 1, Time: last.Add(24 * time.Hour), Price: 230, Lower: 230, Upper: 230},
			{Step: 2, Time: last.Add(48 * time.Hour), Price: 240, Lower: 240, Upper: 240},
		},
	}, nil)

	_, code, body := s.request("TSLA")
	s.Equal(http.StatusOK, code)

	var resp struct {
		Data dto.ForecastResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal("TSLA", resp.Data.Symbol)
	s.Equal(int64(86400), resp.Data.PeriodSeconds)
	s.Require().Len(resp.Data.Points, 2)
	s.Equal(240.0, resp.Data.Points[1].Price)
}

func (s *ForecastHandlerSuite) TestGetForecast_ErrorMapping() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown symbol", services.ErrInvalidSymbol, http.StatusNotFound, "FORECAST_001"},
		{"short history", services.ErrInsufficientHistory, http.StatusUnprocessableEntity, "FORECAST_002"},
		{"provider down", fmt.Errorf("%w: %w", services.ErrPriceProviderUnavailable, errors.New("status 503")), http.StatusBadGateway, "FORECAST_003"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.forecaster.EXPECT().Forecast(gomock.Any(), "AAPL").Return(nil, tc.err)

			_, code, body := s.request("AAPL")
			s.Equal(tc.status, code)

			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(body, &resp))
			s.Equal(tc.code, resp.Error.Code)
			s.Equal("trace-test", resp.Error.TraceID)
		})
	}
}

func (s *ForecastHandlerSuite) TestGetForecast_RejectsMalformedSymbol() {
	_, code, _ := s.request("$$$")
	s.Equal(http.StatusBadRequest, code)
}
