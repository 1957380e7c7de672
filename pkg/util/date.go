package util

import (
    "time"
)

// DateLayout is the wire format for calendar dates (day granularity, no zone).
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date. Returns (d, true) if it worked.
func ParseDate(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    t, err := time.Parse(DateLayout, s)
    if err != nil {
        return time.Time{}, false
    }
    return t, true
}

// Day truncates t to its calendar day in UTC. All simulation date arithmetic
// runs on day-truncated UTC times so comparisons never diverge on clock or
// zone components.
func Day(t time.Time) time.Time {
    y, m, d := t.UTC().Date()
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from a to b (negative when b < a).
func DaysBetween(a, b time.Time) int {
    return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// LastDayOfMonth returns the number of days in the month containing t.
func LastDayOfMonth(t time.Time) int {
    y, m, _ := t.UTC().Date()
    return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// YearsBetween returns elapsed calendar time in years, using a 365.25-day
// year to average over leap years.
func YearsBetween(a, b time.Time) float64 {
    return float64(DaysBetween(a, b)) / 365.25
}

// FormatDate renders a day-truncated time in the wire format.
func FormatDate(t time.Time) string {
    return Day(t).Format(DateLayout)
}
