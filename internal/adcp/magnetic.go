package adcp

import (
	"gonum.org/v1/gonum/mat"
)

// MagneticCorrection rotates magnetic-referenced east/north velocity
// matrices (N samples by M bins) into the true-north reference using a
// per-sample declination angle in degrees (east-positive, one value per
// sample, shared by all bins of that sample).
func MagneticCorrection(theta []float64, u, v *mat.Dense) (uc, vc *mat.Dense, err error) {
	if err := checkSameShape("magnetic", u, v); err != nil {
		return nil, nil, err
	}
	n, m := u.Dims()
	if err := checkSampleCount("magnetic", n, len(theta)); err != nil {
		return nil, nil, err
	}

	rots := make([]*mat.Dense, n)
	for i := 0; i < n; i++ {
		rots[i] = declinationMatrix(radians(theta[i]))
	}

	blocks := rotateBlocks(rots, packComponents(u, v))
	corrected := unpackComponents(blocks, 2, m)
	return corrected[0], corrected[1], nil
}
