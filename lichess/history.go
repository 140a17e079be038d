package lichess

import (
	"sort"
	"time"
)

// historyEntry mirrors one mode's entry in the rating-history document.
// Each point is [year, month, day, rating] with a zero-based month.
type historyEntry struct {
	Name   string  `json:"name"`
	Points [][]int `json:"points"`
}

// normalizeHistory converts the raw history document into ordered,
// gap-bridged per-mode histories. Modes with no points and entries for
// unknown modes are dropped.
func normalizeHistory(entries []historyEntry) []History {
	var out []History
	for _, entry := range entries {
		mode, ok := ModeFromName(entry.Name)
		if !ok {
			continue
		}
		points := make([]HistoryPoint, 0, len(entry.Points))
		for _, p := range entry.Points {
			if len(p) < 4 {
				continue
			}
			// The upstream month index is zero-based.
			date := time.Date(p[0], time.Month(p[1]+1), p[2], 0, 0, 0, 0, time.UTC)
			points = append(points, HistoryPoint{Date: date, Rating: p[3]})
		}
		if len(points) == 0 {
			continue
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
		out = append(out, History{Mode: mode, Points: bridgeGaps(points)})
	}

	// Present histories in the fixed mode order.
	sort.Slice(out, func(i, j int) bool { return out[i].Mode < out[j].Mode })
	return out
}

// bridgeGaps inserts a synthetic point after each gap of inactivity, one
// day after the earlier recorded date and carrying its rating. Without
// it a plotted line would slope across the gap as if the rating changed
// smoothly while the account sat idle.
func bridgeGaps(points []HistoryPoint) []HistoryPoint {
	out := make([]HistoryPoint, 0, len(points))
	for i, p := range points {
		if i > 0 {
			prev := points[i-1]
			if p.Date.Sub(prev.Date) > 24*time.Hour {
				out = append(out, HistoryPoint{
					Date:   prev.Date.AddDate(0, 0, 1),
					Rating: prev.Rating,
				})
			}
		}
		out = append(out, p)
	}
	return out
}
