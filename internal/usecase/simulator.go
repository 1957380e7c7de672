package usecase

import (
	"time"

	"StackSim/internal/domain/models"
)

// Simulate replays a purchase schedule against a price series: each scheduled
// date resolves through the series (exact day, else nearest prior, else
// earliest) and buys amount at that price. Unresolvable dates and
// non-positive prices are skipped, never fatal; an empty series produces a
// zero-valued result. Purchases keep schedule order.
func Simulate(schedule []time.Time, series models.PriceSeries, amount float64) models.SimulationResult {
	var result models.SimulationResult

	for _, date := range schedule {
		price, ok := series.Resolve(date)
		if !ok || price <= 0 {
			continue
		}

		bought := amount / price
		result.Purchases = append(result.Purchases, models.Purchase{
			Date:           date,
			Price:          price,
			AmountSpent:    amount,
			QuantityBought: bought,
		})
		result.TotalQuantity += bought
		result.TotalInvested += amount
	}

	return result
}
