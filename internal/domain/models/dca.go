package models

import "time"

// Purchase is one realized buy: the configured amount spent at the resolved
// price on a scheduled date.
type Purchase struct {
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	AmountSpent    float64   `json:"amount_spent"`
	QuantityBought float64   `json:"quantity_bought"`
}

// SimulationResult aggregates all realized purchases of one run.
type SimulationResult struct {
	TotalQuantity float64    `json:"total_quantity"`
	TotalInvested float64    `json:"total_invested"`
	Purchases     []Purchase `json:"purchases"`
}

// ScenarioReport values the accumulated position at the hypothetical future
// price under one tax treatment. ROI and CAGR are rates (0.5 = +50%).
type ScenarioReport struct {
	GrossValue float64 `json:"gross_value"`
	TaxAmount  float64 `json:"tax_amount"`
	NetValue   float64 `json:"net_value"`
	ROI        float64 `json:"roi"`
	CAGR       float64 `json:"cagr"`
}

// ComparisonReport is the full output of a simulation run: shared totals, the
// two scenario valuations, and the ordered purchase ledger. ScheduledBuys
// carries the schedule length so callers can tell an empty schedule apart
// from missing price data.
type ComparisonReport struct {
	Symbol        string           `json:"symbol"`
	Frequency     string           `json:"frequency"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       time.Time        `json:"end_date"`
	FutureDate    time.Time        `json:"future_date"`
	FuturePrice   float64          `json:"future_price"`
	TaxRate       float64          `json:"tax_rate"`
	Years         float64          `json:"years"`
	ScheduledBuys int              `json:"scheduled_buys"`
	Result        SimulationResult `json:"result"`
	Taxed         ScenarioReport   `json:"taxed"`
	Untaxed       ScenarioReport   `json:"untaxed"`
	Advantage     float64          `json:"advantage"`
}
