package adcp

import "gonum.org/v1/gonum/mat"

// Backscatter converts raw echo intensity (counts, N samples by M bins) to
// relative echo intensity in dB using the factory-supplied scale factor
// (dB/count; nominally 0.45 for the Workhorse family, 0.61 for the
// ExplorerDVL family). A single-element scale broadcasts across all
// samples; otherwise one factor per sample is required.
func Backscatter(raw *mat.Dense, scale []float64) (*mat.Dense, error) {
	n, m := raw.Dims()
	if len(scale) == 0 {
		return nil, &ShapeError{Stage: "backscatter", Dim: "samples", Want: n, Got: 0}
	}
	if len(scale) != 1 {
		if err := checkSampleCount("backscatter", n, len(scale)); err != nil {
			return nil, err
		}
	}

	out := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		s := scale[0]
		if len(scale) > 1 {
			s = scale[i]
		}
		for j := 0; j < m; j++ {
			out.Set(i, j, raw.At(i, j)*s)
		}
	}
	return out, nil
}
