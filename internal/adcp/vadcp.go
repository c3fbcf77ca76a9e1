package adcp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/units"
)

// Five-beam turbulent-profiler products. The VADCP shares the four-beam
// Janus geometry for its slant beams, so the horizontal and error products
// are the four-beam ones. The vertical component exists in two flavours:
// the traditional four-beam estimate, and the "true" vertical from the
// fifth, near-vertical beam.

// VBeamEastward computes the magnetically corrected eastward turbulent
// velocity profile (m/s) from the four slant beams.
func VBeamEastward(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, error) {
	return BeamEastward(b1, b2, b3, b4, headingCdeg, pitchCdeg, rollCdeg, upward, lat, lon, pressureDaPa, ts, decl)
}

// VBeamNorthward computes the magnetically corrected northward turbulent
// velocity profile (m/s) from the four slant beams.
func VBeamNorthward(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, error) {
	return BeamNorthward(b1, b2, b3, b4, headingCdeg, pitchCdeg, rollCdeg, upward, lat, lon, pressureDaPa, ts, decl)
}

// VBeamError computes the error velocity profile (m/s) from the four slant
// beams.
func VBeamError(b1, b2, b3, b4 *mat.Dense) (*mat.Dense, error) {
	return BeamError(b1, b2, b3, b4)
}

// VBeamVerticalEstimate computes the four-beam estimate of the upward
// velocity profile (m/s). The estimate routes through the full attitude
// rotation so it stays comparable with the true-vertical product.
func VBeamVerticalEstimate(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool) (*mat.Dense, error) {
	return BeamVertical(b1, b2, b3, b4, headingCdeg, pitchCdeg, rollCdeg, upward)
}

// VBeamVerticalTrue computes the upward velocity profile (m/s) using the
// fifth beam. The slant beams still supply the horizontal instrument-frame
// components, but beam 5, which points along the instrument's vertical
// axis, replaces the four-beam vertical before the Earth rotation.
func VBeamVerticalTrue(b1, b2, b3, b4, b5 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool) (*mat.Dense, error) {
	u, v, _, _, err := BeamToInstrument(b1, b2, b3, b4)
	if err != nil {
		return nil, err
	}
	if err := checkSameShape("beam2ins", b1, b5); err != nil {
		return nil, err
	}
	_, _, ww, err := InstrumentToEarth(u, v, b5,
		units.DegreesFromCentidegrees(headingCdeg),
		units.DegreesFromCentidegrees(pitchCdeg),
		units.DegreesFromCentidegrees(rollCdeg),
		upward)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(ww), nil
}
