package chartrender

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
)

// RenderBalanceChart renders a PNG line chart of account balance over time.
// Points are plotted in series order and the DD/MM date labels become the
// x-axis tick text. A single point, as produced by an account with no
// transactions yet, renders as a flat segment. Returns raw PNG bytes.
func RenderBalanceChart(points []domain.ChartPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no data points to render")
	}
	if len(points) == 1 {
		points = []domain.ChartPoint{points[0], points[0]}
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	labels := make([]string, len(points))

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		xValues[i] = float64(i)
		yValues[i], _ = p.Balance.Float64()
		labels[i] = p.Date
		minY = math.Min(minY, yValues[i])
		maxY = math.Max(maxY, yValues[i])
	}

	balanceSeries := chart.ContinuousSeries{
		Name: "Balance",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  "Balance Over Time",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionUnderTick,
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				idx := int(math.Round(f))
				if idx < 0 || idx >= len(labels) || math.Abs(f-float64(idx)) > 0.01 {
					return ""
				}
				return labels[idx]
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			balanceSeries,
		},
	}

	// A constant balance gives a zero-delta y-range, which the renderer
	// cannot scale; widen it around the value.
	if minY == maxY {
		graph.YAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
