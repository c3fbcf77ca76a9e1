// Package seawater implements the TEOS-10 pressure-to-height routine used
// to place ADCP sensors and profile bins in the water column. It evaluates
// a streamlined form of the 48-term expression for seawater density at the
// Standard Ocean Salinity and zero Conservative Temperature, then solves
// the hydrostatic relation in closed form.
//
// Height follows the oceanographic convention: zero at the sea surface,
// positive upward, so heights in the ocean are negative.
package seawater

import "math"

// Standard Ocean Salinity (g/kg).
const sso = 35.16504

// Coefficients of the streamlined 48-term Gibbs-function expression,
// evaluated at SA = SSO and CT = 0.
const (
	v01 = 9.998420897506056e+2
	v05 = -6.698001071123802
	v08 = -3.988822378968490e-2
	v12 = -2.233269627352527e-2
	v15 = -1.806789763745328e-4
	v17 = -3.087032500374211e-7
	v20 = 1.550932729220080e-10
	v21 = 1.0
	v26 = -7.521448093615448e-3
	v31 = -3.303308871386421e-5
	v36 = 5.419326551148740e-6
	v37 = -2.742185394906099e-5
	v41 = -1.105097577149576e-7
	v43 = -1.119011592875110e-10
	v47 = -1.200507748551599e-15
)

const dbarToPascal = 10000.0

// EnthalpyAtSSO returns the specific enthalpy (J/kg) at the Standard Ocean
// Salinity and zero Conservative Temperature for a sea pressure p in dbar.
func EnthalpyAtSSO(p float64) float64 {
	sqrtSSO := math.Sqrt(sso)

	a0 := v21 + sso*(v26+v36*sso+v31*sqrtSSO)
	a1 := v37 + v41*sso
	a2 := v43
	a3 := v47

	b0 := v01 + sso*(v05+v08*sqrtSSO)
	b1 := 0.5 * (v12 + v15*sso)
	b2 := v17 + v20*sso

	b1sq := b1 * b1
	sqrtDisc := math.Sqrt(b1sq - b0*b2)

	n := a0 + (2*a3*b0*b1/b2-a2*b0)/b2
	m := a1 + (4*a3*b1sq/b2-a3*b0-2*a2*b1)/b2
	aa := b1 - sqrtDisc
	bb := b1 + sqrtDisc
	part := (n*b2 - m*b1) / (b2 * (bb - aa))

	return dbarToPascal * (p*(a2-2*a3*b1/b2+0.5*a3*p)/b2 +
		(m/(2*b2))*math.Log(1+p*(2*b1+b2*p)/b0) +
		part*math.Log(1+(b2*p*(bb-aa))/(aa*(bb+b2*p))))
}

// HeightFromPressure returns the height (meters, negative in the ocean) for
// a sea pressure p in dbar at the given latitude in decimal degrees.
// Assumes p >= 0 and latitude in [-90, 90]; values outside those domains
// propagate through the floating-point math unguarded.
func HeightFromPressure(p, lat float64) float64 {
	sinLat := math.Sin(lat * math.Pi / 180.0)
	sin2 := sinLat * sinLat

	// Gravity at the surface as a function of latitude (GRS-80), and its
	// linear variation with height.
	b := 9.780327 * (1.0 + (5.2792e-3+2.32e-5*sin2)*sin2)
	const gamma = 2.26e-07
	a := -0.5 * gamma * b
	c := EnthalpyAtSSO(p)

	return -2 * c / (b + math.Sqrt(b*b-4*a*c))
}

// Heights applies HeightFromPressure to a pressure slice at one latitude.
func Heights(p []float64, lat float64) []float64 {
	out := make([]float64, len(p))
	for i, pi := range p {
		out[i] = HeightFromPressure(pi, lat)
	}
	return out
}
