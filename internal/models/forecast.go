package models

import "time"

// ForecastPoint is one projected price. Lower and Upper bound the price by
// one residual standard deviation.
type ForecastPoint struct {
	Step  int       `json:"step"`
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
	Lower float64   `json:"lower"`
	Upper float64   `json:"upper"`
}

// ForecastResult is a linear-trend projection of a price series
type ForecastResult struct {
	Symbol         string          `json:"symbol"`
	Horizon        int             `json:"horizon"`
	Period         time.Duration   `json:"period"`
	SampleCount    int             `json:"sample_count"`
	LastObserved   PriceSample     `json:"last_observed"`
	Intercept      float64         `json:"intercept"`
	Slope          float64         `json:"slope"`
	ResidualStdDev float64         `json:"residual_std_dev"`
	Points         []ForecastPoint `json:"points"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// Prices returns the projected prices in order
func (r *ForecastResult) Prices() []float64 {
	prices := make([]float64, len(r.Points))
	for i, p := range r.Points {
		prices[i] = p.Price
	}
	return prices
}
