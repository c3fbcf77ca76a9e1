package adcp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotation-matrix plumbing for the coordinate transform pipeline. Each
// sample in a batch carries its own attitude, so a batch of N samples needs
// N independent rotation matrices applied to N velocity blocks. gonum has
// no strided batched GEMM, so rotateBlocks loops over samples and issues one
// dense multiply per sample against that sample's full k-by-M block. The
// per-bin work stays inside the BLAS call either way.

// headingMatrix returns the 3x3 rotation for a magnetic heading h (radians).
func headingMatrix(h float64) *mat.Dense {
	s, c := math.Sincos(h)
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

// pitchMatrix returns the 3x3 rotation for a corrected pitch p (radians).
func pitchMatrix(p float64) *mat.Dense {
	s, c := math.Sincos(p)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// rollMatrix returns the 3x3 rotation for an effective roll r (radians).
func rollMatrix(r float64) *mat.Dense {
	s, c := math.Sincos(r)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// declinationMatrix returns the 2x2 rotation for a declination theta
// (radians, east-positive). Positive theta rotates magnetic-referenced
// components toward true north.
func declinationMatrix(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(2, 2, []float64{
		c, s,
		-s, c,
	})
}

// attitudeMatrix composes the heading, pitch and roll rotations for one
// sample as M1(heading) * M2(pitch) * M3(roll). The order encodes the
// instrument family's attitude convention and must not change.
func attitudeMatrix(heading, pitch, roll float64) *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	m.Mul(headingMatrix(heading), pitchMatrix(pitch))
	m.Mul(m, rollMatrix(roll))
	return m
}

// rotateBlocks applies one rotation matrix per sample to that sample's
// component block: out[i] = rots[i] * blocks[i], where rots[i] is k-by-k and
// blocks[i] is k-by-M. The rotation is shared across all bins of a sample;
// the velocity vector varies per bin. Samples are never pooled.
func rotateBlocks(rots, blocks []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(blocks))
	for i := range blocks {
		r, _ := rots[i].Dims()
		_, m := blocks[i].Dims()
		dst := mat.NewDense(r, m, nil)
		dst.Mul(rots[i], blocks[i])
		out[i] = dst
	}
	return out
}

// packComponents assembles, for each sample, a k-by-M block whose rows are
// that sample's rows of the given component matrices (k = len(components)).
func packComponents(components ...*mat.Dense) []*mat.Dense {
	n, m := components[0].Dims()
	blocks := make([]*mat.Dense, n)
	for i := 0; i < n; i++ {
		b := mat.NewDense(len(components), m, nil)
		for j, comp := range components {
			b.SetRow(j, comp.RawRowView(i))
		}
		blocks[i] = b
	}
	return blocks
}

// unpackComponents is the inverse of packComponents: it scatters the rows of
// each per-sample block back into k full N-by-M component matrices.
func unpackComponents(blocks []*mat.Dense, k, bins int) []*mat.Dense {
	out := make([]*mat.Dense, k)
	for j := 0; j < k; j++ {
		out[j] = mat.NewDense(len(blocks), bins, nil)
	}
	for i, b := range blocks {
		for j := 0; j < k; j++ {
			out[j].SetRow(i, b.RawRowView(j))
		}
	}
	return out
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }
