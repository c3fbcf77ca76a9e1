package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePNG writes one PNG per product series into outputDir, plotting the
// product value against bin depth. Returns the number of plots written.
func SavePNG(data *ChartData, outputDir string) (int, error) {
	if data == nil || len(data.Series) == 0 {
		return 0, nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	count := 0
	for _, series := range data.Series {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s (sample %d)", series.Name, data.Sample)
		p.X.Label.Text = "Bin depth (m)"
		p.Y.Label.Text = "Velocity (m/s)"

		pts := make(plotter.XYs, 0, len(series.Points))
		for _, sp := range series.Points {
			pts = append(pts, plotter.XY{X: sp.Depth, Y: sp.Value})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return count, fmt.Errorf("series %q: %w", series.Name, err)
		}
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(series.Name, line)
		p.Legend.Top = true

		file := filepath.Join(outputDir, fmt.Sprintf("profile_%s.png", series.Name))
		if err := p.Save(10*vg.Inch, 6*vg.Inch, file); err != nil {
			return count, fmt.Errorf("save plot %q: %w", file, err)
		}
		count++
	}
	return count, nil
}

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// MakeReportOutputDir builds a timestamped output directory for one report
// run: <baseDir>/<input_basename>/<timestamp>.
func MakeReportOutputDir(baseDir, inputFile string) string {
	ts := FormatTimestamp(time.Now())
	if inputFile != "" {
		base := filepath.Base(inputFile)
		ext := filepath.Ext(base)
		name := base[:len(base)-len(ext)]
		return filepath.Join(baseDir, name, ts)
	}
	return filepath.Join(baseDir, "run_"+ts)
}
