package adcp

// DeclinationFunc supplies the magnetic declination (degrees, east-positive)
// for each sample of a batch, given per-sample deployment latitude and
// longitude (decimal degrees), sample timestamps (seconds since 1900-01-01)
// and sensor depths (meters). Implementations typically wrap a geomagnetic
// model such as the WMM; the pipeline treats the returned angles as
// authoritative and does not validate their range.
type DeclinationFunc func(lat, lon, ts, depth []float64) ([]float64, error)

// FixedDeclination returns a provider that reports the same declination for
// every sample. It backs configured site overrides and tests.
func FixedDeclination(theta float64) DeclinationFunc {
	return func(lat, _, _, _ []float64) ([]float64, error) {
		out := make([]float64, len(lat))
		for i := range out {
			out[i] = theta
		}
		return out, nil
	}
}
