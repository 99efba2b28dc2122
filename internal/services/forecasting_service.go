package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"gonum.org/v1/gonum/stat"
)

const priceProviderService = "price_provider"

// ForecastConfig controls the projection and the provider call
type ForecastConfig struct {
	Horizon         int
	Period          time.Duration
	ProviderTimeout time.Duration
}

func DefaultForecastConfig() ForecastConfig {
	return ForecastConfig{
		Horizon:         30,
		Period:          24 * time.Hour,
		ProviderTimeout: 10 * time.Second,
	}
}

type ForecastingService struct {
	config   ForecastConfig
	provider PriceProviderInterface
	breaker  CircuitBreakerInterface
	logger   LedgerLoggerInterface
	metrics  MetricsRecorderInterface
	now      func() time.Time
}

func NewForecastingService(
	config ForecastConfig,
	provider PriceProviderInterface,
	breaker CircuitBreakerInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) (ForecastingServiceInterface, error) {
	if config.Horizon < 1 {
		return nil, fmt.Errorf("forecast horizon must be at least 1, got %d", config.Horizon)
	}
	if config.Period <= 0 {
		config.Period = DefaultForecastConfig().Period
	}
	if config.ProviderTimeout <= 0 {
		config.ProviderTimeout = DefaultForecastConfig().ProviderTimeout
	}
	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig(), nil)
	}

	return &ForecastingService{
		config:   config,
		provider: provider,
		breaker:  breaker,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}, nil
}

// Forecast fetches the price history of symbol and projects it forward
func (s *ForecastingService) Forecast(ctx context.Context, symbol string) (*models.ForecastResult, error) {
	start := time.Now()
	symbol = models.NormalizeSymbol(symbol)

	result, err := s.forecast(ctx, symbol)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime(MetricForecastDuration, duration)

	if err != nil {
		s.metrics.IncrementCounter(MetricForecastRequest, map[string]string{"status": forecastStatus(err)})
		s.logger.LogForecastFailed(ctx, symbol, err.Error(), duration.Milliseconds())
		return nil, err
	}

	s.metrics.IncrementCounter(MetricForecastRequest, map[string]string{"status": "success"})
	s.logger.LogForecastGenerated(ctx, symbol, result.SampleCount, result.Horizon, duration.Milliseconds())
	return result, nil
}

func (s *ForecastingService) forecast(ctx context.Context, symbol string) (*models.ForecastResult, error) {
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}
	if s.breaker.IsOpen() {
		return nil, ErrPriceProviderUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, s.config.ProviderTimeout)
	defer cancel()

	series, err := s.provider.GetHistory(callCtx, symbol)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSymbol) {
			s.breaker.RecordSuccess()
			return nil, ErrInvalidSymbol
		}
		s.breaker.RecordFailure()
		return nil, fmt.Errorf("%w: %w", ErrPriceProviderUnavailable, err)
	}
	s.breaker.RecordSuccess()

	if series.Len() == 0 {
		return nil, ErrInvalidSymbol
	}
	if series.Symbol == "" {
		series.Symbol = symbol
	}

	return s.ForecastSeries(series)
}

// ForecastSeries fits an ordinary least squares line to the prices against
// their index and extends it Horizon steps past the last sample. Each point
// carries a band of one residual standard deviation.
func (s *ForecastingService) ForecastSeries(series models.PriceSeries) (*models.ForecastResult, error) {
	n := series.Len()
	if n < 2 {
		return nil, ErrInsufficientHistory
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("failed to forecast %s: %w", series.Symbol, err)
	}

	prices := series.Prices()
	base := prices[0]

	// fitting offsets from the first price keeps a flat series exact
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range prices {
		xs[i] = float64(i)
		ys[i] = p - base
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	residuals := make([]float64, n)
	for i := range ys {
		residuals[i] = ys[i] - (alpha + beta*xs[i])
	}
	sigma := stat.StdDev(residuals, nil)

	last, _ := series.Last()
	points := make([]models.ForecastPoint, s.config.Horizon)
	for i := 1; i <= s.config.Horizon; i++ {
		price := base + alpha + beta*float64(n-1+i)
		points[i-1] = models.ForecastPoint{
			Step:  i,
			Time:  last.Time.Add(time.Duration(i) * s.config.Period),
			Price: price,
			Lower: price - sigma,
			Upper: price + sigma,
		}
	}

	return &models.ForecastResult{
		Symbol:         series.Symbol,
		Horizon:        s.config.Horizon,
		Period:         s.config.Period,
		SampleCount:    n,
		LastObserved:   last,
		Intercept:      base + alpha,
		Slope:          beta,
		ResidualStdDev: sigma,
		Points:         points,
		GeneratedAt:    s.now().UTC(),
	}, nil
}

func forecastStatus(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSymbol):
		return "invalid_symbol"
	case errors.Is(err, ErrInsufficientHistory):
		return "insufficient_history"
	case errors.Is(err, ErrPriceProviderUnavailable):
		return "provider_unavailable"
	default:
		return "failed"
	}
}
