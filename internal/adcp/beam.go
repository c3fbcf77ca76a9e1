// Package adcp converts raw acoustic Doppler current profiler velocity
// measurements into calibrated, Earth-referenced current profiles.
//
// The core is a three-stage pipeline: beam-to-instrument (fixed Janus
// geometry), instrument-to-Earth (per-sample heading/pitch/roll rotation)
// and magnetic declination correction (rotation into true north). All
// stages operate on batches: an N-by-M matrix holds N independent time
// samples of M depth bins, and per-sample attributes are length-N slices.
// Stages are pure; a call either returns full output matrices or fails
// with a ShapeError or UnsupportedError before computing anything.
package adcp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// HeadSign identifies the transducer head geometry. Only convex heads are
// supported; the sign flips the horizontal components for concave heads.
type HeadSign int

const (
	HeadConvex  HeadSign = 1
	HeadConcave HeadSign = -1
)

// Janus beam geometry for a nominal 20 degree beam half-angle.
const beamAngleDeg = 20.0

var (
	beamAngleRad = beamAngleDeg * math.Pi / 180.0
	beamScaleA   = 1.0 / (2.0 * math.Sin(beamAngleRad))
	beamScaleB   = 1.0 / (4.0 * math.Cos(beamAngleRad))
	beamScaleD   = beamScaleA / math.Sqrt2
)

// BeamToInstrument converts four beam-coordinate velocity profile matrices
// (N samples by M bins, mm/s) into instrument-frame east, north, vertical
// and error velocity matrices of the same shape and unit, assuming a convex
// transducer head.
func BeamToInstrument(b1, b2, b3, b4 *mat.Dense) (u, v, w, e *mat.Dense, err error) {
	return BeamToInstrumentHead(b1, b2, b3, b4, HeadConvex)
}

// BeamToInstrumentHead is BeamToInstrument with an explicit head sign.
// Concave heads are out of scope and fail fast rather than mis-transform.
func BeamToInstrumentHead(b1, b2, b3, b4 *mat.Dense, head HeadSign) (u, v, w, e *mat.Dense, err error) {
	if head != HeadConvex {
		return nil, nil, nil, nil, &UnsupportedError{
			Stage:  "beam2ins",
			Detail: "only convex transducer heads are supported",
		}
	}
	if err := checkSameShape("beam2ins", b1, b2, b3, b4); err != nil {
		return nil, nil, nil, nil, err
	}

	n, m := b1.Dims()
	c := float64(head)
	u = mat.NewDense(n, m, nil)
	v = mat.NewDense(n, m, nil)
	w = mat.NewDense(n, m, nil)
	e = mat.NewDense(n, m, nil)

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			p1 := b1.At(i, j)
			p2 := b2.At(i, j)
			p3 := b3.At(i, j)
			p4 := b4.At(i, j)
			u.Set(i, j, c*beamScaleA*(p1-p2))
			v.Set(i, j, c*beamScaleA*(p4-p3))
			w.Set(i, j, beamScaleB*(p1+p2+p3+p4))
			e.Set(i, j, beamScaleD*(p1+p2-p3-p4))
		}
	}
	return u, v, w, e, nil
}

// ProfileMatrix builds a 1-by-M matrix from a single velocity profile, for
// callers holding one sample rather than a batch.
func ProfileMatrix(profile []float64) *mat.Dense {
	return mat.NewDense(1, len(profile), append([]float64(nil), profile...))
}
