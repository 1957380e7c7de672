package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPriceSeriesNormalizes(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: time.Date(2024, 3, 2, 15, 30, 0, 0, time.UTC), Close: 200},
		{Date: day(2024, 3, 1), Close: 100},
		{Date: day(2024, 3, 1), Close: 150}, // duplicate day, last wins
		{Date: day(2024, 3, 3), Close: -5},  // dropped
		{Date: day(2024, 3, 4), Close: 0},   // dropped
	})

	points := series.Points()
	assert.Len(t, points, 2)
	assert.Equal(t, day(2024, 3, 1), points[0].Date)
	assert.Equal(t, 150.0, points[0].Close)
	assert.Equal(t, day(2024, 3, 2), points[1].Date)
	assert.Equal(t, 200.0, points[1].Close)
}

func TestResolveExactDay(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: day(2024, 1, 1), Close: 10},
		{Date: day(2024, 1, 5), Close: 50},
	})

	price, ok := series.Resolve(day(2024, 1, 5))
	assert.True(t, ok)
	assert.Equal(t, 50.0, price)
}

func TestResolveFallsBackToPriorDay(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: day(2024, 1, 1), Close: 10},
		{Date: day(2024, 1, 5), Close: 50},
	})

	// Gap inside the series resolves to the nearest prior close.
	price, ok := series.Resolve(day(2024, 1, 3))
	assert.True(t, ok)
	assert.Equal(t, 10.0, price)

	// A date past the series end resolves to the last close.
	price, ok = series.Resolve(day(2024, 2, 1))
	assert.True(t, ok)
	assert.Equal(t, 50.0, price)
}

func TestResolveBeforeSeriesUsesEarliest(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: day(2024, 1, 10), Close: 42},
	})

	price, ok := series.Resolve(day(2023, 6, 1))
	assert.True(t, ok)
	assert.Equal(t, 42.0, price)
}

func TestResolveEmptySeries(t *testing.T) {
	var series PriceSeries

	price, ok := series.Resolve(day(2024, 1, 1))
	assert.False(t, ok)
	assert.Zero(t, price)
	assert.True(t, series.Empty())
}

func TestPointsReturnsCopy(t *testing.T) {
	series := NewPriceSeries([]PricePoint{{Date: day(2024, 1, 1), Close: 10}})

	points := series.Points()
	points[0].Close = 999

	price, _ := series.Resolve(day(2024, 1, 1))
	assert.Equal(t, 10.0, price)
}
