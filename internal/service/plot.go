package service

import (
	"context"
	"fmt"
	"io"

	"bandgap_lab/internal/models"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	plotWidth  = 900
	plotHeight = 480
)

type PlotService struct {
	estimator Estimator
}

func NewPlotService(estimator Estimator) *PlotService {
	return &PlotService{estimator: estimator}
}

// RenderPNG writes the ln(I) vs 1/T scatter with its fitted line to w.
// Estimator errors are returned unchanged and nothing is written.
func (s *PlotService) RenderPNG(ctx context.Context, w io.Writer) (models.BandGapResult, error) {
	res, err := s.estimator.Estimate(ctx)
	if err != nil {
		return res, err
	}
	ch := regressionChart(res)
	if err := ch.Render(chart.PNG, w); err != nil {
		return res, fmt.Errorf("render regression plot: %w", err)
	}
	return res, nil
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func regressionChart(res models.BandGapResult) chart.Chart {
	xs, ys := res.Columns()

	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}
	fitXs := []float64{minX, maxX}
	fitYs := []float64{res.Slope*minX + res.Intercept, res.Slope*maxX + res.Intercept}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Eg = %.4f eV, R² = %.4f", res.BandGapEV, res.RSquared),
		Width:      plotWidth,
		Height:     plotHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name: "1/T (1/K)",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.6f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{Name: "ln(I)"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "readings", XValues: xs, YValues: ys, Style: pointStyle(chart.ColorBlue)},
			chart.ContinuousSeries{Name: "fit", XValues: fitXs, YValues: fitYs, Style: chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2}},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}
