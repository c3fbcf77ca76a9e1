package adcp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/seawater"
	"github.com/moana-data/currents.report/internal/units"
)

// Bin-depth utilities for tRDI-style profilers. Bin depths are reported
// positive-down in meters: an upward-looking instrument profiles toward the
// surface (offsets subtract from sensor depth), a downward-looking one
// profiles away from it (offsets add).

// BinDepths computes per-sample bin-center depths for PD0/PD12 ensembles.
// distFirstBinCM and binSizeCM are the configured bin geometry in
// centimeters; pressureDaPa holds the per-sample sensor pressure in
// decapascals; lat is the deployment latitude. Sensor depth comes from the
// TEOS-10 pressure-to-height routine. The result is N samples by numBins.
func BinDepths(distFirstBinCM, binSizeCM float64, numBins int, pressureDaPa []float64, upward bool, lat float64) (*mat.Dense, error) {
	if numBins < 1 {
		return nil, &ShapeError{Stage: "bindepths", Dim: "bins", Want: 1, Got: numBins}
	}

	dbar := units.DecibarsFromDecapascals(pressureDaPa)
	depths := make([]float64, len(dbar))
	for i, p := range dbar {
		// Height is negative below the surface; depth is positive-down.
		depths[i] = -seawater.HeightFromPressure(p, lat)
	}
	return binDepthGrid(distFirstBinCM, binSizeCM, numBins, depths, upward), nil
}

// BinDepthsPD8 computes per-sample bin-center depths for PD8 ensembles,
// where the caller supplies an estimated sensor depth in meters directly.
// Negative sensor depths (height convention) are sign-normalised.
func BinDepthsPD8(distFirstBinCM, binSizeCM float64, numBins int, sensorDepthM []float64, upward bool) (*mat.Dense, error) {
	if numBins < 1 {
		return nil, &ShapeError{Stage: "bindepths", Dim: "bins", Want: 1, Got: numBins}
	}

	depths := make([]float64, len(sensorDepthM))
	for i, d := range sensorDepthM {
		if d < 0 {
			d = -d
		}
		depths[i] = d
	}
	return binDepthGrid(distFirstBinCM, binSizeCM, numBins, depths, upward), nil
}

func binDepthGrid(distFirstBinCM, binSizeCM float64, numBins int, sensorDepthM []float64, upward bool) *mat.Dense {
	first := units.MetersFromCentimeters(distFirstBinCM)
	size := units.MetersFromCentimeters(binSizeCM)

	out := mat.NewDense(len(sensorDepthM), numBins, nil)
	for i, depth := range sensorDepthM {
		for j := 0; j < numBins; j++ {
			offset := first + size*float64(j)
			if upward {
				out.Set(i, j, depth-offset)
			} else {
				out.Set(i, j, depth+offset)
			}
		}
	}
	return out
}
