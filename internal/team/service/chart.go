package service

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/festy23/veterans_league/internal/team/model"
)

var (
	chartLine = drawing.ColorFromHex("1b5e20")
	chartDot  = drawing.ColorFromHex("f9a825")
)

// renderPointsChart draws cumulative points by week. The line starts at
// week 0 with no points and the y range is fixed so that a single week or a
// pointless team still renders.
func renderPointsChart(teamName string, series []model.PointsPoint) ([]byte, error) {
	top := 1
	for _, p := range series {
		top = max(top, p.Points)
	}

	xValues := make([]float64, 0, len(series)+1)
	yValues := make([]float64, 0, len(series)+1)
	xValues = append(xValues, 0)
	yValues = append(yValues, 0)
	for _, p := range series {
		xValues = append(xValues, float64(p.Week))
		yValues = append(yValues, float64(p.Points))
	}

	graph := chart.Chart{
		Title:  teamName,
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Week",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Points",
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Points",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chartLine,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    chartDot,
				},
			},
		},
	}

	buf := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
