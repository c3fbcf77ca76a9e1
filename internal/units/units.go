// Package units provides shared constants and conversions between raw
// instrument units and physical units.
package units

import "gonum.org/v1/gonum/floats"

// Speed unit constants for report output.
const (
	MPS   = "mps"
	CMPS  = "cmps"
	MMPS  = "mmps"
	KNOTS = "knots"
)

// ValidUnits contains all valid speed unit values.
var ValidUnits = []string{MPS, CMPS, MMPS, KNOTS}

// IsValid checks if the given unit is in the list of valid units.
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// Raw ADCP telemetry scale factors. Attitude angles arrive in centidegrees,
// velocities in mm/s, pressure in decapascals, bin geometry in centimeters.
const (
	CentidegreesPerDegree  = 100.0
	MMPerSecPerMPerSec     = 1000.0
	DecapascalsPerDecibar  = 1000.0
	CentimetersPerMeter    = 100.0
	MetersPerDecibarApprox = 1.019716 // shallow-water approximation
)

// ConvertSpeed converts a speed from meters per second to the target units.
// Processed velocity products are held in m/s.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS:
		return speedMPS
	case CMPS:
		return speedMPS * 100.0
	case MMPS:
		return speedMPS * 1000.0
	case KNOTS:
		return speedMPS * 1.9438444924406
	default:
		return speedMPS
	}
}

// DegreesFromCentidegrees rescales a per-sample angle slice from
// centidegrees to degrees, returning a new slice.
func DegreesFromCentidegrees(cdeg []float64) []float64 {
	out := append([]float64(nil), cdeg...)
	floats.Scale(1.0/CentidegreesPerDegree, out)
	return out
}

// DecibarsFromDecapascals rescales a pressure slice from decapascals to
// decibars, returning a new slice.
func DecibarsFromDecapascals(daPa []float64) []float64 {
	out := append([]float64(nil), daPa...)
	floats.Scale(1.0/DecapascalsPerDecibar, out)
	return out
}

// MetersFromDecibars converts a pressure slice in decibars to an approximate
// depth in meters, returning a new slice.
func MetersFromDecibars(dbar []float64) []float64 {
	out := append([]float64(nil), dbar...)
	floats.Scale(MetersPerDecibarApprox, out)
	return out
}

// MetersFromCentimeters converts a scalar length from centimeters to meters.
func MetersFromCentimeters(cm float64) float64 {
	return cm / CentimetersPerMeter
}
