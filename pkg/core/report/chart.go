package report

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// chartMu serializes chart rendering. The library shares font and
// raster state across charts, so concurrent renders corrupt output.
var chartMu sync.Mutex

// RenderCashFlowChart draws the monthly cumulative cash-flow series as
// a PNG line chart with a dashed break-even line at zero. The series is
// expected to be the 13-point projection (month 0 through month 12),
// but any series of two or more points renders.
func RenderCashFlowChart(series []float64) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("cash-flow series too short: %d points", len(series))
	}

	chartMu.Lock()
	defer chartMu.Unlock()

	months := make([]float64, len(series))
	zeros := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i := range series {
		months[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: strconv.Itoa(i)}
	}

	lineColor := drawing.ColorFromHex("2563eb")
	gridStyle := chart.Style{
		StrokeColor:     drawing.Color{R: 120, G: 120, B: 120, A: 153},
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{1.0, 3.0},
	}

	graph := chart.Chart{
		Title:      "Cumulative Cash Flow (Year 1)",
		TitleStyle: chart.Style{FontSize: 10},
		Width:      600,
		Height:     300,
		XAxis: chart.XAxis{
			Name:           "Months",
			NameStyle:      chart.Style{FontSize: 8},
			Style:          chart.Style{FontSize: 8},
			Ticks:          ticks,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Net Value ($)",
			NameStyle:      chart.Style{FontSize: 8},
			Style:          chart.Style{FontSize: 8},
			ValueFormatter: dollarFormatter,
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Break-even",
				Style: chart.Style{
					StrokeColor:     drawing.ColorBlack,
					StrokeWidth:     1.0,
					StrokeDashArray: []float64{5.0, 5.0},
				},
				XValues: months,
				YValues: zeros,
			},
			chart.ContinuousSeries{
				Name: "Cumulative Cash Flow",
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3.0,
					DotColor:    lineColor,
					DotWidth:    4.0,
				},
				XValues: months,
				YValues: series,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render: %w", err)
	}
	return buf.Bytes(), nil
}

func dollarFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return formatMoney(f, 0)
}
