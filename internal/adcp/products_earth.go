package adcp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/units"
)

// Data product wrappers for instruments that already report Earth-frame
// velocities. The beam and attitude stages are performed on board, so only
// the declination correction and unit rescale remain.

// EarthEastward computes the magnetically corrected eastward velocity
// profile (m/s) from Earth-frame profiles in mm/s.
func EarthEastward(u, v *mat.Dense, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, error) {
	uc, _, err := earthHorizontal(u, v, lat, lon, pressureDaPa, ts, decl)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(uc), nil
}

// EarthNorthward computes the magnetically corrected northward velocity
// profile (m/s) from Earth-frame profiles in mm/s.
func EarthNorthward(u, v *mat.Dense, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, error) {
	_, vc, err := earthHorizontal(u, v, lat, lon, pressureDaPa, ts, decl)
	if err != nil {
		return nil, err
	}
	return scaleToMPS(vc), nil
}

// EarthVertical rescales an Earth-frame upward velocity profile from mm/s
// to m/s. Declination does not affect the vertical component.
func EarthVertical(w *mat.Dense) *mat.Dense {
	return scaleToMPS(w)
}

// EarthError rescales an Earth-frame error velocity profile from mm/s to
// m/s.
func EarthError(e *mat.Dense) *mat.Dense {
	return scaleToMPS(e)
}

func earthHorizontal(u, v *mat.Dense, lat, lon, pressureDaPa, ts []float64, decl DeclinationFunc) (*mat.Dense, *mat.Dense, error) {
	depth := units.MetersFromDecibars(units.DecibarsFromDecapascals(pressureDaPa))
	theta, err := decl(lat, lon, ts, depth)
	if err != nil {
		return nil, nil, fmt.Errorf("magnetic declination: %w", err)
	}
	return MagneticCorrection(theta, u, v)
}
