package profile

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML renders the prepared profiles as a self-contained eCharts HTML
// page. Each product becomes one line series plotted against bin depth.
func RenderHTML(data *ChartData, title string, w io.Writer) error {
	if data == nil || len(data.Series) == 0 {
		return fmt.Errorf("no profile series to render")
	}

	xLabels := make([]string, 0, data.NumBins)
	for _, pt := range data.Series[0].Points {
		xLabels = append(xLabels, fmt.Sprintf("%.1f", pt.Depth))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "1200px", Height: "640px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("sample=%d bins=%d depth=%.1f-%.1fm", data.Sample, data.NumBins, data.MinDepth, data.MaxDepth),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Bin depth (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Velocity (m/s)", Min: -data.MaxAbs, Max: data.MaxAbs}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	line.SetXAxis(xLabels)
	for _, series := range data.Series {
		points := make([]opts.LineData, 0, len(series.Points))
		for _, pt := range series.Points {
			points = append(points, opts.LineData{Value: pt.Value})
		}
		line.AddSeries(series.Name, points)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
