// Package profile prepares and renders charts of processed velocity
// profiles. Data preparation is separated from chart rendering for improved
// testability.
package profile

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SeriesPoint is one bin of a rendered profile: bin depth (m, positive
// down) against a product value.
type SeriesPoint struct {
	Depth float64 `json:"depth"`
	Value float64 `json:"value"`
}

// ProductSeries holds one data product's profile for a single sample.
type ProductSeries struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// ChartData holds prepared data for rendering one sample's velocity
// profiles.
type ChartData struct {
	Series   []ProductSeries `json:"series"`
	Sample   int             `json:"sample"`
	NumBins  int             `json:"num_bins"`
	MaxAbs   float64         `json:"max_abs"`
	MinDepth float64         `json:"min_depth"`
	MaxDepth float64         `json:"max_depth"`
}

// Prepare extracts one sample's row from each product matrix and pairs it
// with that sample's bin depths. Product names are emitted in sorted order
// so chart legends are stable.
func Prepare(binDepths *mat.Dense, products map[string]*mat.Dense, sample int) (*ChartData, error) {
	n, bins := binDepths.Dims()
	if sample < 0 || sample >= n {
		return nil, fmt.Errorf("sample %d out of range [0, %d)", sample, n)
	}

	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)

	data := &ChartData{
		Sample:   sample,
		NumBins:  bins,
		MinDepth: math.Inf(1),
		MaxDepth: math.Inf(-1),
	}

	for j := 0; j < bins; j++ {
		d := binDepths.At(sample, j)
		if d < data.MinDepth {
			data.MinDepth = d
		}
		if d > data.MaxDepth {
			data.MaxDepth = d
		}
	}

	for _, name := range names {
		prod := products[name]
		pr, pc := prod.Dims()
		if pr != n || pc != bins {
			return nil, fmt.Errorf("product %q is %dx%d, want %dx%d", name, pr, pc, n, bins)
		}

		series := ProductSeries{Name: name, Points: make([]SeriesPoint, 0, bins)}
		for j := 0; j < bins; j++ {
			v := prod.At(sample, j)
			if math.Abs(v) > data.MaxAbs {
				data.MaxAbs = math.Abs(v)
			}
			series.Points = append(series.Points, SeriesPoint{
				Depth: binDepths.At(sample, j),
				Value: v,
			})
		}
		data.Series = append(data.Series, series)
	}

	// Add padding so profile extremes stay visible on the chart.
	if data.MaxAbs > 0 {
		data.MaxAbs *= 1.05
	} else {
		data.MaxAbs = 1.0
	}

	return data, nil
}
