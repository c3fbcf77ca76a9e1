package adcp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// InstrumentToEarth rotates instrument-frame velocity matrices (N samples by
// M bins) into the Earth frame using per-sample heading, pitch and roll in
// degrees and the per-sample vertical orientation flag (true = upward
// looking). Units are preserved.
//
// Two attitude corrections apply before the rotation is composed:
//
//   - an upward-looking instrument has its head flipped, so the effective
//     roll is the raw roll plus 180 degrees;
//   - the tilt sensor rides on the rolling platform, so the pitch it reports
//     couples with roll. The corrected pitch is
//     atan(tan(rawPitch) * cos(rawRoll)), using the raw roll, not the
//     orientation-adjusted one.
//
// The per-sample rotation is M1(heading) * M2(pitch) * M3(roll) and is
// applied to every bin of that sample.
func InstrumentToEarth(u, v, w *mat.Dense, heading, pitch, roll []float64, upward []bool) (uu, vv, ww *mat.Dense, err error) {
	if err := checkSameShape("ins2earth", u, v, w); err != nil {
		return nil, nil, nil, err
	}
	n, m := u.Dims()
	for _, s := range []int{len(heading), len(pitch), len(roll), len(upward)} {
		if err := checkSampleCount("ins2earth", n, s); err != nil {
			return nil, nil, nil, err
		}
	}

	rots := make([]*mat.Dense, n)
	for i := 0; i < n; i++ {
		r := roll[i]
		if upward[i] {
			r += 180.0
		}
		p := math.Atan(math.Tan(radians(pitch[i])) * math.Cos(radians(roll[i])))
		rots[i] = attitudeMatrix(radians(heading[i]), p, radians(r))
	}

	blocks := rotateBlocks(rots, packComponents(u, v, w))
	earth := unpackComponents(blocks, 3, m)
	return earth[0], earth[1], earth[2], nil
}
