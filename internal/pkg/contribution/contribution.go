// Package contribution derives calendar presence grids from diary timestamps.
package contribution

import "time"

// DayKeyFormat is the calendar-day key layout.
const DayKeyFormat = "2006-01-02"

// GridMonths is how many trailing months the rendered grid covers.
const GridMonths = 6

// DayKey reduces a timestamp to its calendar-day key in the timestamp's location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// BuildIndex reduces timestamps to a set of calendar-day keys in now's
// location, keeping only timestamps on or after now minus windowDays.
// Pure: the same inputs always produce the same set.
func BuildIndex(timestamps []time.Time, windowDays int, now time.Time) map[string]struct{} {
	cutoff := now.AddDate(0, 0, -windowDays)
	index := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		if ts.Before(cutoff) {
			continue
		}
		index[DayKey(ts.In(now.Location()))] = struct{}{}
	}
	return index
}

// MonthBlock is one month of the grid: week columns of 7 day-of-week cells
// (0 = Sunday). A zero cell is a blank placeholder, either outside the month
// or after "today".
type MonthBlock struct {
	Year  int
	Month time.Month
	Weeks [][7]int
}

// Date returns the date of a non-blank cell in the given location.
func (m MonthBlock) Date(day int, loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, loc)
}

// LayoutMonths builds the trailing six-month grid ending at today's month.
// Days after today are blank, not future dates.
func LayoutMonths(today time.Time) []MonthBlock {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	blocks := make([]MonthBlock, 0, GridMonths)
	for i := GridMonths - 1; i >= 0; i-- {
		first := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, today.Location())
		blocks = append(blocks, layoutMonth(first, today))
	}
	return blocks
}

func layoutMonth(first, today time.Time) MonthBlock {
	daysInMonth := first.AddDate(0, 1, -1).Day()
	startOffset := int(first.Weekday())
	totalWeeks := (startOffset + daysInMonth + 6) / 7

	block := MonthBlock{
		Year:  first.Year(),
		Month: first.Month(),
		Weeks: make([][7]int, totalWeeks),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		if date.After(today) {
			break
		}
		cell := startOffset + day - 1
		block.Weeks[cell/7][cell%7] = day
	}
	return block
}
