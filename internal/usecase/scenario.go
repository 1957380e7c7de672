package usecase

import (
	"math"

	"StackSim/internal/domain/models"
)

// Evaluate values an accumulated position at a hypothetical future price
// under two tax treatments: taxed sale through an exchange at taxRate, and an
// untaxed self-custody exit. Both scenarios share the same gross value.
func Evaluate(result models.SimulationResult, futurePrice, taxRate, years float64) (taxed, untaxed models.ScenarioReport) {
	gross := result.TotalQuantity * futurePrice

	tax := gross * taxRate
	taxed = models.ScenarioReport{
		GrossValue: gross,
		TaxAmount:  tax,
		NetValue:   gross - tax,
		ROI:        roi(gross-tax, result.TotalInvested),
		CAGR:       CAGR(result.TotalInvested, gross-tax, years),
	}

	untaxed = models.ScenarioReport{
		GrossValue: gross,
		NetValue:   gross,
		ROI:        roi(gross, result.TotalInvested),
		CAGR:       CAGR(result.TotalInvested, gross, years),
	}

	return taxed, untaxed
}

// roi is the net return rate over the invested amount, defined as 0 for an
// empty simulation rather than dividing by zero.
func roi(netValue, invested float64) float64 {
	if invested <= 0 {
		return 0
	}
	return (netValue - invested) / invested
}

// CAGR returns the constant annual growth rate from initial to final over
// years, as a rate. A non-positive initial or years returns 0: the exponent
// is undefined for negative bases and a zero span has no annual rate.
func CAGR(initial, final, years float64) float64 {
	if initial <= 0 || years <= 0 {
		return 0
	}
	return math.Pow(final/initial, 1/years) - 1
}
