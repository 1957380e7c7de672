package models

import (
	"sort"
	"time"

	"StackSim/pkg/util"
)

// PricePoint is a single daily closing price.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is an immutable, ascending series of daily closes with at most
// one strictly positive price per calendar day. Construct it with
// NewPriceSeries; the zero value is a valid empty series.
type PriceSeries struct {
	points []PricePoint
}

// NewPriceSeries normalizes raw provider points into a series: dates are
// day-truncated, non-positive closes dropped, duplicate days collapsed (last
// value wins), result sorted ascending.
func NewPriceSeries(points []PricePoint) PriceSeries {
	byDay := make(map[time.Time]float64, len(points))
	for _, p := range points {
		if p.Close <= 0 {
			continue
		}
		byDay[util.Day(p.Date)] = p.Close
	}

	normalized := make([]PricePoint, 0, len(byDay))
	for day, close := range byDay {
		normalized = append(normalized, PricePoint{Date: day, Close: close})
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Date.Before(normalized[j].Date)
	})

	return PriceSeries{points: normalized}
}

// Len returns the number of daily closes.
func (s PriceSeries) Len() int { return len(s.points) }

// Empty reports whether the series holds no prices.
func (s PriceSeries) Empty() bool { return len(s.points) == 0 }

// Points returns a copy of the underlying points, ascending by date.
func (s PriceSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}

// Resolve returns the price for a target date: the exact day if present,
// otherwise the latest day at or before it, otherwise (when the target
// predates every known day) the earliest available price. ok is false only
// when the series is empty.
func (s PriceSeries) Resolve(date time.Time) (price float64, ok bool) {
	if len(s.points) == 0 {
		return 0, false
	}

	day := util.Day(date)
	// Index of the first point after the target day; the floor sits just
	// before it.
	i := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Date.After(day)
	})
	if i == 0 {
		// Target predates all known prices: fall back to the earliest.
		return s.points[0].Close, true
	}
	return s.points[i-1].Close, true
}
