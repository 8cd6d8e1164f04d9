package calendar

import "time"

// Day is one cell of a month grid. Derived on every query, never persisted.
type Day struct {
	Date    time.Time `json:"date"`
	Weekday int       `json:"weekday"` // 0=Sunday..6=Saturday
	IsPast  bool      `json:"is_past"`
	IsToday bool      `json:"is_today"`
}

// MonthDays produces every calendar date of (year, month) in ascending
// order, from the 1st to the last day. The caller pre-normalizes the pair
// (month 13 must already have been carried into the next year).
func MonthDays(year int, month time.Month, now time.Time, loc *time.Location) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	days := make([]Day, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:    d,
			Weekday: int(d.Weekday()),
			IsPast:  IsPast(d, now),
			IsToday: SameDay(d, now),
		})
	}
	return days
}

// IsPast reports whether date's civil day is strictly before now's civil
// day. Time-of-day is ignored on both sides.
func IsPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MondayIndex remaps 0=Sunday..6=Saturday to 0=Monday..6=Sunday. The month
// grid's leading empty cells depend on this mapping.
func MondayIndex(weekday int) int {
	if weekday == 0 {
		return 6
	}
	return weekday - 1
}
