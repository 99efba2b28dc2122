package models

import (
	"errors"
	"time"
)

var (
	ErrUnorderedSeries = errors.New("price samples must be in ascending time order")
	ErrInvalidSymbol   = errors.New("invalid symbol")
)

// PriceSample is one closing price observation
type PriceSample struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// PriceSeries is the ordered price history of a symbol
type PriceSeries struct {
	Symbol  string        `json:"symbol"`
	Samples []PriceSample `json:"samples"`
}

// Len returns the number of samples
func (s PriceSeries) Len() int {
	return len(s.Samples)
}

// Prices returns the sample prices in order
func (s PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s.Samples))
	for i, p := range s.Samples {
		prices[i] = p.Price
	}
	return prices
}

// Last returns the most recent sample
func (s PriceSeries) Last() (PriceSample, bool) {
	if len(s.Samples) == 0 {
		return PriceSample{}, false
	}
	return s.Samples[len(s.Samples)-1], true
}

// Validate checks samples are strictly ascending in time
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s.Samples); i++ {
		if !s.Samples[i].Time.After(s.Samples[i-1].Time) {
			return ErrUnorderedSeries
		}
	}
	return nil
}
