package views

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/discochess/castle-discord-service/config"
	"github.com/discochess/castle-discord-service/lichess"
)

// renderGraph plots every mode's rating history as a PNG line chart.
// Series appear in fixed mode order with the configured per-mode color
// and dash style, so the same history data always produces the same
// plotted series.
func renderGraph(user *lichess.User, styles map[string]config.ChartStyle) ([]byte, error) {
	var series []chart.Series
	for _, mode := range lichess.Modes {
		history, ok := user.ModeHistory(mode)
		if !ok || len(history.Points) == 0 {
			continue
		}

		points := history.Points
		if len(points) == 1 {
			// A single point cannot form a line, and a duplicate at
			// the same date leaves a zero x-range the renderer
			// refuses. Extend the rating one day forward instead.
			points = append(points, lichess.HistoryPoint{
				Date:   points[0].Date.AddDate(0, 0, 1),
				Rating: points[0].Rating,
			})
		}

		xs := make([]time.Time, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.Date
			ys[i] = float64(p.Rating)
		}

		style := styles[mode.Key()]
		series = append(series, chart.TimeSeries{
			Name: mode.String(),
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex(strings.TrimPrefix(style.Color, "#")),
				StrokeWidth:     1.5,
				StrokeDashArray: style.DashArray,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	if len(series) == 0 {
		return nil, ErrNoHistory
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s's Rating History", user.Username),
		Width:  1280,
		Height: 720,
		XAxis:  chart.XAxis{Name: "Date"},
		YAxis:  chart.YAxis{Name: "Glicko-2"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("could not render rating graph: %w", err)
	}
	return buf.Bytes(), nil
}
