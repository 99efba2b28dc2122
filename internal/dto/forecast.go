package dto

import (
	"time"

	"fintrack/internal/models"
)

type ForecastPointResponse struct {
	Step  int       `json:"step"`
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
	Lower float64   `json:"lower"`
	Upper float64   `json:"upper"`
}

type ForecastResponse struct {
	Symbol         string                  `json:"symbol"`
	Horizon        int                     `json:"horizon"`
	PeriodSeconds  int64                   `json:"periodSeconds"`
	SampleCount    int                     `json:"sampleCount"`
	LastPrice      float64                 `json:"lastPrice"`
	LastObservedAt time.Time               `json:"lastObservedAt"`
	Slope          float64                 `json:"slope"`
	ResidualStdDev float64                 `json:"residualStdDev"`
	Points         []ForecastPointResponse `json:"points"`
	GeneratedAt    time.Time               `json:"generatedAt"`
}

func ToForecastResponse(r *models.ForecastResult) ForecastResponse {
	points := make([]ForecastPointResponse, len(r.Points))
	for i, p := range r.Points {
		points[i] = ForecastPointResponse(p)
	}
	return ForecastResponse{
		Symbol:         r.Symbol,
		Horizon:        r.Horizon,
		PeriodSeconds:  int64(r.Period / time.Second),
		SampleCount:    r.SampleCount,
		LastPrice:      r.LastObserved.Price,
		LastObservedAt: r.LastObserved.Time,
		Slope:          r.Slope,
		ResidualStdDev: r.ResidualStdDev,
		Points:         points,
		GeneratedAt:    r.GeneratedAt,
	}
}
