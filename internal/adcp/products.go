package adcp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/units"
)

// Data product wrappers for instruments programmed in beam coordinates.
// Each wrapper normalises raw telemetry units (centidegrees, decapascals),
// runs the required pipeline stages in order, and rescales the result from
// mm/s to m/s. Beam matrices are N samples by M bins in mm/s; attitude
// slices are per-sample centidegrees; pressure is per-sample decapascals;
// ts is seconds since 1900-01-01.

// BeamEastward computes the magnetically corrected eastward velocity
// profile (m/s) from beam-coordinate profiles.
func BeamEastward(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, error) {
	uc, _, err := beamHorizontal(b1, b2, b3, b4, headingCdeg, pitchCdeg, rollCdeg, upward, lat, lon, pressureDaPa, ts, decl)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(uc), nil
}

// BeamNorthward computes the magnetically corrected northward velocity
// profile (m/s) from beam-coordinate profiles.
func BeamNorthward(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, error) {
	_, vc, err := beamHorizontal(b1, b2, b3, b4, headingCdeg, pitchCdeg, rollCdeg, upward, lat, lon, pressureDaPa, ts, decl)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(vc), nil
}

// BeamVertical computes the upward velocity profile (m/s) from
// beam-coordinate profiles. Vertical velocity needs no declination stage.
func BeamVertical(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool) (*mat.Dense, error) {
	u, v, w, _, err := BeamToInstrument(b1, b2, b3, b4)
	if err != nil {
		return nil, err
	}
	_, _, ww, err := InstrumentToEarth(u, v, w,
		units.DegreesFromCentidegrees(headingCdeg),
		units.DegreesFromCentidegrees(pitchCdeg),
		units.DegreesFromCentidegrees(rollCdeg),
		upward)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(ww), nil
}

// BeamError computes the error velocity profile (m/s) from beam-coordinate
// profiles. Error velocity is frame-independent, so only the beam transform
// applies.
func BeamError(b1, b2, b3, b4 *mat.Dense) (*mat.Dense, error) {
	_, _, _, e, err := BeamToInstrument(b1, b2, b3, b4)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(e), nil
}

// beamHorizontal runs the full three-stage pipeline and returns the
// corrected east and north components still in mm/s.
func beamHorizontal(b1, b2, b3, b4 *mat.Dense, headingCdeg, pitchCdeg, rollCdeg []float64, upward []bool, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, *mat.Dense, error) {
	u, v, w, _, err := BeamToInstrument(b1, b2, b3, b4)
	if err != nil {
		return nil, nil, err
	}
	uu, vv, _, err := InstrumentToEarth(u, v, w,
		units.DegreesFromCentidegrees(headingCdeg),
		units.DegreesFromCentidegrees(pitchCdeg),
		units.DegreesFromCentidegrees(rollCdeg),
		upward)
	if err != nil {
		return nil, nil, err
	}

	depth := units.MetersFromDecibars(units.DecibarsFromDecapascals(pressureDaPa))
	theta, err := decl(lat, lon, ts, depth)
	if err != nil {
		return nil, nil, fmt.Errorf("magnetic declination: %w", err)
	}
	return MagneticCorrection(theta, uu, vv)
}

// scaleToMPS rescales a velocity matrix from mm/s to m/s.
func scaleToMPS(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Scale(1.0/units.MMPerSecPerMPerSec, m)
	return &out
}
