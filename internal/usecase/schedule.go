package usecase

import (
	"sort"
	"time"

	domrepo "StackSim/internal/domain/repository"
	"StackSim/pkg/util"
)

// Schedule generates the ordered set of calendar dates a DCA plan would buy
// on within [start, end]. cadenceDay is the weekday (0=Monday .. 6=Sunday)
// for weekly plans and the target day-of-month (1-31) for monthly plans;
// daily plans ignore it. An inverted or empty range yields an empty schedule.
func Schedule(start, end time.Time, freq domrepo.Frequency, cadenceDay int) []time.Time {
	start, end = util.Day(start), util.Day(end)
	if start.After(end) {
		return nil
	}

	var dates []time.Time

	switch freq {
	case domrepo.Daily:
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}

	case domrepo.Weekly:
		target := weekdayFromMondayIndex(cadenceDay)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if d.Weekday() == target {
				dates = append(dates, d)
			}
		}

	case domrepo.Monthly:
		// Walk month by month from the month containing start. The target
		// day clamps to the month's length, so day 31 buys on the last day
		// of shorter months and day 30 still lands in February.
		y, m, _ := start.Date()
		for month := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
			day := cadenceDay
			if last := util.LastDayOfMonth(month); day > last {
				day = last
			}
			buy := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
			if !buy.Before(start) && !buy.After(end) {
				dates = append(dates, buy)
			}
		}
	}

	return dedupeSorted(dates)
}

// weekdayFromMondayIndex maps a 0=Monday .. 6=Sunday index onto time.Weekday.
func weekdayFromMondayIndex(i int) time.Weekday {
	if i < 0 || i > 6 {
		i = 0
	}
	return time.Weekday((i + 1) % 7)
}

func dedupeSorted(dates []time.Time) []time.Time {
	if len(dates) == 0 {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	out := dates[:1]
	for _, d := range dates[1:] {
		if !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
