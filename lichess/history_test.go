package lichess

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeHistoryGapBridging(t *testing.T) {
	// Day 1 at 1500 and day 5 at 1550, nothing between. A synthetic
	// point must appear at day 2 carrying 1500, and nothing at day 3 or 4.
	entries := []historyEntry{{
		Name: "Blitz",
		Points: [][]int{
			{2023, 0, 1, 1500}, // months are zero-based upstream
			{2023, 0, 5, 1550},
		},
	}}

	histories := normalizeHistory(entries)
	require.Len(t, histories, 1)
	assert.Equal(t, Blitz, histories[0].Mode)

	points := histories[0].Points
	require.Len(t, points, 3)
	assert.Equal(t, HistoryPoint{Date: day(2023, time.January, 1), Rating: 1500}, points[0])
	assert.Equal(t, HistoryPoint{Date: day(2023, time.January, 2), Rating: 1500}, points[1])
	assert.Equal(t, HistoryPoint{Date: day(2023, time.January, 5), Rating: 1550}, points[2])
}

func TestNormalizeHistoryConsecutiveDaysUntouched(t *testing.T) {
	entries := []historyEntry{{
		Name: "Rapid",
		Points: [][]int{
			{2023, 5, 10, 1400},
			{2023, 5, 11, 1410},
			{2023, 5, 12, 1420},
		},
	}}

	histories := normalizeHistory(entries)
	require.Len(t, histories, 1)
	assert.Len(t, histories[0].Points, 3)
}

func TestNormalizeHistorySortsUnorderedPoints(t *testing.T) {
	entries := []historyEntry{{
		Name: "Bullet",
		Points: [][]int{
			{2023, 0, 3, 1600},
			{2023, 0, 2, 1590},
		},
	}}

	histories := normalizeHistory(entries)
	require.Len(t, histories, 1)
	points := histories[0].Points
	require.Len(t, points, 2)
	assert.True(t, points[0].Date.Before(points[1].Date))
	assert.Equal(t, 1590, points[0].Rating)
}

func TestNormalizeHistoryMonthIncrement(t *testing.T) {
	entries := []historyEntry{{
		Name:   "Classical",
		Points: [][]int{{2022, 11, 25, 1700}},
	}}

	histories := normalizeHistory(entries)
	require.Len(t, histories, 1)
	assert.Equal(t, day(2022, time.December, 25), histories[0].Points[0].Date)
}

func TestNormalizeHistoryDropsUnknownAndEmpty(t *testing.T) {
	entries := []historyEntry{
		{Name: "Some Future Mode", Points: [][]int{{2023, 0, 1, 1500}}},
		{Name: "Blitz", Points: nil},
		{Name: "Rapid", Points: [][]int{{2023, 0, 1, 1500}}},
	}

	histories := normalizeHistory(entries)
	require.Len(t, histories, 1)
	assert.Equal(t, Rapid, histories[0].Mode)
}

func TestNormalizeHistoryFixedModeOrder(t *testing.T) {
	// Upstream order must not leak through.
	entries := []historyEntry{
		{Name: "Puzzles", Points: [][]int{{2023, 0, 1, 2000}}},
		{Name: "Bullet", Points: [][]int{{2023, 0, 1, 1500}}},
		{Name: "Blitz", Points: [][]int{{2023, 0, 1, 1600}}},
	}

	histories := normalizeHistory(entries)
	require.Len(t, histories, 3)
	assert.Equal(t, []Mode{Bullet, Blitz, Puzzle},
		[]Mode{histories[0].Mode, histories[1].Mode, histories[2].Mode})
}
