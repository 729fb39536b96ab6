// Package datefilter resolves year/month/day browse filters into timestamp
// ranges for diary queries.
package datefilter

import "time"

// Filter is an optional date constraint on a diary listing. Fields combine by
// precedence: (year,month,day) > (year,month) > (year) > (month,day with the
// current year) > (month with the current year). An empty filter matches
// everything.
type Filter struct {
	Year  *int
	Month *int // 1-12
	Day   *int // 1-31
}

// SetYear constrains the filter to a year, keeping month/day.
func (f *Filter) SetYear(year int) {
	f.Year = &year
}

// SetMonth constrains the filter to a month and clears any day selection:
// the previously chosen day number may not exist in the new month.
func (f *Filter) SetMonth(month int) {
	f.Month = &month
	f.Day = nil
}

// SetDay constrains the filter to a day of month.
func (f *Filter) SetDay(day int) {
	f.Day = &day
}

// Clear resets the filter to match everything.
func (f *Filter) Clear() {
	f.Year, f.Month, f.Day = nil, nil, nil
}

// IsZero reports whether the filter constrains anything.
func (f Filter) IsZero() bool {
	return f.Year == nil && f.Month == nil && f.Day == nil
}

// Valid reports whether the set fields are in range. A day without a month is
// tolerated (it is ignored by Range), out-of-range values are not.
func (f Filter) Valid() bool {
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		return false
	}
	if f.Day != nil && (*f.Day < 1 || *f.Day > 31) {
		return false
	}
	return true
}

// Range resolves the filter to a half-open [start, end) interval in now's
// location. ok is false when the filter matches everything. A month without a
// year defaults to now's year.
func (f Filter) Range(now time.Time) (start, end time.Time, ok bool) {
	loc := now.Location()

	switch {
	case f.Year != nil && f.Month != nil && f.Day != nil:
		start = time.Date(*f.Year, time.Month(*f.Month), *f.Day, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	case f.Year != nil && f.Month != nil:
		start = time.Date(*f.Year, time.Month(*f.Month), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	case f.Year != nil:
		start = time.Date(*f.Year, 1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(1, 0, 0)
	case f.Month != nil && f.Day != nil:
		start = time.Date(now.Year(), time.Month(*f.Month), *f.Day, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	case f.Month != nil:
		start = time.Date(now.Year(), time.Month(*f.Month), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0)
	default:
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
