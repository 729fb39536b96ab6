package contribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*3600)

func TestBuildIndex(t *testing.T) {
	now := time.Date(2025, 8, 31, 22, 0, 0, 0, kst)
	timestamps := []time.Time{
		time.Date(2025, 8, 31, 9, 30, 0, 0, kst),
		time.Date(2025, 8, 31, 21, 0, 0, 0, kst), // same day, deduplicated
		time.Date(2025, 2, 1, 0, 0, 0, 0, kst),
		time.Date(2024, 8, 1, 0, 0, 0, 0, kst), // outside the window
	}

	index := BuildIndex(timestamps, 365, now)

	assert.Len(t, index, 2)
	assert.Contains(t, index, "2025-08-31")
	assert.Contains(t, index, "2025-02-01")
	assert.NotContains(t, index, "2024-08-01")
}

func TestBuildIndexZeroWindow(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, kst)
	index := BuildIndex([]time.Time{
		time.Date(2025, 8, 31, 9, 0, 0, 0, kst),
		time.Date(2025, 8, 30, 9, 0, 0, 0, kst),
	}, 0, now)

	// A zero window keeps only timestamps from today onward.
	assert.Equal(t, map[string]struct{}{"2025-08-31": {}}, index)
}

func TestBuildIndexDeterministic(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, kst)
	timestamps := []time.Time{
		time.Date(2025, 8, 1, 3, 0, 0, 0, kst),
		time.Date(2025, 7, 15, 23, 59, 59, 0, kst),
		time.Date(2025, 6, 2, 0, 0, 0, 0, kst),
	}

	first := BuildIndex(timestamps, 180, now)
	second := BuildIndex(timestamps, 180, now)
	assert.Equal(t, first, second)
}

func TestBuildIndexKeysFollowNowLocation(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, kst)
	// 2025-08-30 18:00 UTC is already 2025-08-31 in KST.
	index := BuildIndex([]time.Time{time.Date(2025, 8, 30, 18, 0, 0, 0, time.UTC)}, 7, now)
	assert.Contains(t, index, "2025-08-31")
}

func TestLayoutMonthsWindow(t *testing.T) {
	today := time.Date(2025, 8, 15, 0, 0, 0, 0, kst)
	blocks := LayoutMonths(today)

	require.Len(t, blocks, GridMonths)
	assert.Equal(t, time.March, blocks[0].Month)
	assert.Equal(t, 2025, blocks[0].Year)
	assert.Equal(t, time.August, blocks[5].Month)
}

func TestLayoutMonthsYearBoundary(t *testing.T) {
	today := time.Date(2025, 2, 1, 0, 0, 0, 0, kst)
	blocks := LayoutMonths(today)

	require.Len(t, blocks, GridMonths)
	assert.Equal(t, time.September, blocks[0].Month)
	assert.Equal(t, 2024, blocks[0].Year)
	assert.Equal(t, time.February, blocks[5].Month)
	assert.Equal(t, 2025, blocks[5].Year)
}

func TestLayoutMonthGrid(t *testing.T) {
	// August 2025: starts on a Friday (weekday 5), 31 days.
	today := time.Date(2025, 8, 31, 0, 0, 0, 0, kst)
	blocks := LayoutMonths(today)
	august := blocks[5]

	require.Equal(t, time.August, august.Month)
	require.Len(t, august.Weeks, 6) // ceil((5+31)/7)

	// Leading cells before Friday are blank.
	for wd := 0; wd < 5; wd++ {
		assert.Zero(t, august.Weeks[0][wd])
	}
	assert.Equal(t, 1, august.Weeks[0][5])
	assert.Equal(t, 2, august.Weeks[0][6])

	// Last cell of the month: Aug 31 is a Sunday in the final week.
	assert.Equal(t, 31, august.Weeks[5][0])
}

func TestLayoutMonthsBlanksAfterToday(t *testing.T) {
	today := time.Date(2025, 8, 15, 0, 0, 0, 0, kst)
	blocks := LayoutMonths(today)
	august := blocks[5]

	seen := 0
	for _, week := range august.Weeks {
		for _, day := range week {
			if day != 0 {
				seen++
				assert.LessOrEqual(t, day, 15)
			}
		}
	}
	assert.Equal(t, 15, seen)
}

func TestMonthBlockDate(t *testing.T) {
	block := MonthBlock{Year: 2025, Month: time.March}
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, kst), block.Date(10, kst))
}
