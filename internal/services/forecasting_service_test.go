package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ForecastingServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *service_mocks.MockPriceProviderInterface
	logger   *service_mocks.MockLedgerLoggerInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	breaker  CircuitBreakerInterface
	service  *ForecastingService
	ctx      context.Context
	start    time.Time
	fixedNow time.Time
}

func (s *ForecastingServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = service_mocks.NewMockPriceProviderInterface(s.ctrl)
	s.logger = service_mocks.NewMockLedgerLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1}, nil)
	s.ctx = context.Background()
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, err := NewForecastingService(ForecastConfig{Horizon: 5, Period: 24 * time.Hour, ProviderTimeout: time.Second},
		s.provider, s.breaker, s.logger, s.metrics)
	s.Require().NoError(err)
	s.service = svc.(*ForecastingService)
	s.service.now = func() time.Time { return s.fixedNow }

	s.logger.EXPECT().LogForecastGenerated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogForecastFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *ForecastingServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestForecastingServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastingServiceSuite))
}

func (s *ForecastingServiceSuite) series(symbol string, prices ...float64) models.PriceSeries {
	samples := make([]models.PriceSample, len(prices))
	for i, p := range prices {
		samples[i] = models.PriceSample{Time: s.start.AddDate(0, 0, i), Price: p}
	}
	return models.PriceSeries{Symbol: symbol, Samples: samples}
}

func (s *ForecastingServiceSuite) TestNewForecastingService_RejectsZeroHorizon() {
	svc, err := NewForecastingService(ForecastConfig{Horizon: 0}, s.provider, nil, s.logger, s.metrics)
	s.Nil(svc)
	s.Error(err)
}

func (s *ForecastingServiceSuite) TestForecastSeries_ConstantSeries() {
	result, err := s.service.ForecastSeries(s.series("KO", 61.37, 61.37, 61.37, 61.37, 61.37, 61.37))
	s.Require().NoError(err)

	s.Require().Len(result.Points, 5)
	for _, p := range result.Points {
		s.Equal(61.37, p.Price)
		s.Equal(61.37, p.Lower)
		s.Equal(61.37, p.Upper)
	}
	s.Equal(0.0, result.Slope)
	s.Equal(0.0, result.ResidualStdDev)
}

func (s *ForecastingServiceSuite) TestForecastSeries_LinearSeriesContinuesLine() {
	// price = 100 + 2.5 * index
	result, err := s.service.ForecastSeries(s.series("LIN", 100, 102.5, 105, 107.5, 110, 112.5, 115, 117.5))
	s.Require().NoError(err)

	s.InDelta(2.5, result.Slope, 1e-9)
	s.InDelta(100, result.Intercept, 1e-9)
	s.InDelta(0, result.ResidualStdDev, 1e-9)
	s.Require().Len(result.Points, 5)
	for i, p := range result.Points {
		expected := 100 + 2.5*float64(7+i+1)
		s.InDelta(expected, p.Price, 1e-9)
		s.Equal(i+1, p.Step)
	}
}

func (s *ForecastingServiceSuite) TestForecastSeries_PointTimesFollowLastSample() {
	result, err := s.service.ForecastSeries(s.series("LIN", 1, 2, 3))
	s.Require().NoError(err)

	last := s.start.AddDate(0, 0, 2)
	s.Equal(last, result.LastObserved.Time)
	for i, p := range result.Points {
		s.Equal(last.Add(time.Duration(i+1)*24*time.Hour), p.Time)
	}
	s.Equal(s.fixedNow, result.GeneratedAt)
	s.Equal(3, result.SampleCount)
	s.Equal(5, result.Horizon)
}

func (s *ForecastingServiceSuite) TestForecastSeries_NoisySeriesHasBand() {
	result, err := s.service.ForecastSeries(s.series("NOISE", 10, 12, 11, 13, 12, 14))
	s.Require().NoError(err)

	s.Greater(result.ResidualStdDev, 0.0)
	for _, p := range result.Points {
		s.InDelta(p.Price-result.ResidualStdDev, p.Lower, 1e-9)
		s.InDelta(p.Price+result.ResidualStdDev, p.Upper, 1e-9)
	}
}

func (s *ForecastingServiceSuite) TestForecastSeries_IsDeterministic() {
	series := s.series("DET", 5, 7, 6, 9, 8)
	first, err := s.service.ForecastSeries(series)
	s.Require().NoError(err)
	second, err := s.service.ForecastSeries(series)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *ForecastingServiceSuite) TestForecastSeries_InsufficientHistory() {
	for _, series := range []models.PriceSeries{s.series("NONE"), s.series("ONE", 42)} {
		result, err := s.service.ForecastSeries(series)
		s.Nil(result)
		s.ErrorIs(err, ErrInsufficientHistory)
	}
}

func (s *ForecastingServiceSuite) TestForecastSeries_UnorderedSamples() {
	series := s.series("BAD", 1, 2, 3)
	series.Samples[2].Time = s.start

	_, err := s.service.ForecastSeries(series)
	s.ErrorIs(err, models.ErrUnorderedSeries)
}

func (s *ForecastingServiceSuite) TestForecast_FetchesNormalizedSymbol() {
	s.provider.EXPECT().GetHistory(gomock.Any(), "TSLA").Return(s.series("TSLA", 200, 210, 220), nil)

	result, err := s.service.Forecast(s.ctx, " tsla ")
	s.Require().NoError(err)
	s.Equal("TSLA", result.Symbol)
	s.InDelta(230, result.Points[0].Price, 1e-9)
}

func (s *ForecastingServiceSuite) TestForecast_EmptySymbolSkipsProvider() {
	result, err := s.service.Forecast(s.ctx, "   ")
	s.Nil(result)
	s.ErrorIs(err, ErrInvalidSymbol)
}

func (s *ForecastingServiceSuite) TestForecast_UnknownSymbol() {
	s.provider.EXPECT().GetHistory(gomock.Any(), "NOPE").Return(models.PriceSeries{}, models.ErrInvalidSymbol)

	result, err := s.service.Forecast(s.ctx, "NOPE")
	s.Nil(result)
	s.ErrorIs(err, ErrInvalidSymbol)
	s.Equal(StateClosed, s.breaker.GetState())
}

func (s *ForecastingServiceSuite) TestForecast_EmptyHistoryIsInvalidSymbol() {
	s.provider.EXPECT().GetHistory(gomock.Any(), "GONE").Return(models.PriceSeries{Symbol: "GONE"}, nil)

	result, err := s.service.Forecast(s.ctx, "GONE")
	s.Nil(result)
	s.ErrorIs(err, ErrInvalidSymbol)
}

func (s *ForecastingServiceSuite) TestForecast_SingleSampleIsInsufficient() {
	s.provider.EXPECT().GetHistory(gomock.Any(), "IPO").Return(s.series("IPO", 18), nil)

	_, err := s.service.Forecast(s.ctx, "IPO")
	s.ErrorIs(err, ErrInsufficientHistory)
}

func (s *ForecastingServiceSuite) TestForecast_ProviderTimeout() {
	s.provider.EXPECT().GetHistory(gomock.Any(), "SLOW").
		DoAndReturn(func(ctx context.Context, _ string) (models.PriceSeries, error) {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(time.Second), deadline, time.Second)
			return models.PriceSeries{}, context.DeadlineExceeded
		})

	_, err := s.service.Forecast(s.ctx, "SLOW")
	s.ErrorIs(err, ErrPriceProviderUnavailable)
	s.True(errors.Is(err, context.DeadlineExceeded))
}

func (s *ForecastingServiceSuite) TestForecast_OpenBreakerRejectsCalls() {
	s.provider.EXPECT().GetHistory(gomock.Any(), "AAPL").
		Return(models.PriceSeries{}, errors.New("status 503")).Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.service.Forecast(s.ctx, "AAPL")
		s.ErrorIs(err, ErrPriceProviderUnavailable)
	}
	s.Equal(StateOpen, s.breaker.GetState())

	// provider is not called while the breaker is open
	_, err := s.service.Forecast(s.ctx, "AAPL")
	s.ErrorIs(err, ErrPriceProviderUnavailable)
}
