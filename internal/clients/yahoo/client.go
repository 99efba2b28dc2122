package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fintrack/internal/models"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

type Config struct {
	BaseURL   string
	Range     string
	Timeout   time.Duration
	UserAgent string
}

// Client reads daily closing prices from the Yahoo Finance chart API
type Client struct {
	client    *http.Client
	baseURL   string
	rangeSpec string
	userAgent string
	logger    *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Range == "" {
		cfg.Range = "1y"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		rangeSpec: cfg.Range,
		userAgent: cfg.UserAgent,
		logger:    logger.With(slog.String("client", "yahoo")),
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// GetHistory returns the daily closes of symbol over the configured range.
// Unknown symbols and empty charts yield models.ErrInvalidSymbol.
func (c *Client) GetHistory(ctx context.Context, symbol string) (models.PriceSeries, error) {
	symbol = models.NormalizeSymbol(symbol)
	if symbol == "" {
		return models.PriceSeries{}, models.ErrInvalidSymbol
	}

	params := url.Values{}
	params.Add("interval", "1d")
	params.Add("range", c.rangeSpec)
	reqURL := c.baseURL + "/v8/finance/chart/" + url.PathEscape(symbol) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.PriceSeries{}, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.PriceSeries{}, fmt.Errorf("failed to fetch historical data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.PriceSeries{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return models.PriceSeries{}, fmt.Errorf("%w: %s", models.ErrInvalidSymbol, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return models.PriceSeries{}, fmt.Errorf("yahoo chart API returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result chartResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return models.PriceSeries{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Chart.Error != nil {
		return models.PriceSeries{}, fmt.Errorf("%w: %s: %s", models.ErrInvalidSymbol, symbol, result.Chart.Error.Description)
	}
	if len(result.Chart.Result) == 0 || len(result.Chart.Result[0].Indicators.Quote) == 0 {
		c.logger.Warn("no historical data returned", slog.String("symbol", symbol))
		return models.PriceSeries{}, fmt.Errorf("%w: %s", models.ErrInvalidSymbol, symbol)
	}

	chart := result.Chart.Result[0]
	closes := chart.Indicators.Quote[0].Close
	series := models.PriceSeries{Symbol: symbol}
	for i, ts := range chart.Timestamp {
		// missing trading days come back as null closes
		if i >= len(closes) || closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		series.Samples = append(series.Samples, models.PriceSample{
			Time:  time.Unix(ts, 0).UTC(),
			Price: *closes[i],
		})
	}

	if series.Len() == 0 {
		return models.PriceSeries{}, fmt.Errorf("%w: %s", models.ErrInvalidSymbol, symbol)
	}
	return series, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
