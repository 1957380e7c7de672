package models

// SimulateRequest is the input contract of the /api/simulate endpoint.
// Dates are ISO calendar days; ordering (start < end < future) is checked at
// the handler after parsing, not here.
type SimulateRequest struct {
	StartDate   string  `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	FutureDate  string  `query:"future_date" json:"future_date" validate:"required,datetime=2006-01-02"`
	Amount      float64 `query:"amount" json:"amount" default:"500" validate:"gt=0"`
	Frequency   string  `query:"frequency" json:"frequency" default:"monthly" validate:"oneof=daily weekly monthly"`
	Weekday     int     `query:"weekday" json:"weekday" validate:"gte=0,lte=6"`
	DayOfMonth  int     `query:"day_of_month" json:"day_of_month" default:"1" validate:"gte=1,lte=31"`
	FuturePrice float64 `query:"future_price" json:"future_price" default:"100000" validate:"gt=0"`
}
