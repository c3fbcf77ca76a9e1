package seawater

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values from the TEOS-10 (GSW v3.03) check tables for z_from_p
// at 4 degrees north.
func TestHeightFromPressure(t *testing.T) {
	t.Parallel()

	pressures := []float64{10, 50, 125, 250, 600, 1000}
	want := []float64{
		-9.94460074,
		-49.71817465,
		-124.2728275,
		-248.47044828,
		-595.82618014,
		-992.0931748,
	}

	got := Heights(pressures, 4)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "pressure %g dbar", pressures[i])
	}
}

func TestHeightFromPressureProperties(t *testing.T) {
	t.Parallel()

	t.Run("surface pressure gives surface height", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0, HeightFromPressure(0, 45), 1e-9)
	})

	t.Run("height is negative and decreases with pressure", func(t *testing.T) {
		t.Parallel()
		prev := 0.0
		for _, p := range []float64{1, 10, 100, 1000, 5000} {
			z := HeightFromPressure(p, 30)
			assert.Less(t, z, prev, "pressure %g dbar", p)
			prev = z
		}
	})

	t.Run("higher latitude gravity shortens the water column", func(t *testing.T) {
		t.Parallel()
		equator := HeightFromPressure(1000, 0)
		pole := HeightFromPressure(1000, 90)
		assert.Greater(t, pole, equator, "stronger gravity at the pole means less depth per dbar")
	})
}

// Reference values from the GSW v3.03 enthalpy_SSO_0_p check table.
func TestEnthalpyAtSSO(t *testing.T) {
	t.Parallel()

	pressures := []float64{10, 50, 125, 250, 600, 1000}
	want := []float64{
		97.26388276,
		486.27439004,
		1215.47518168,
		2430.24919716,
		5827.90973888,
		9704.32296903,
	}

	for i, p := range pressures {
		assert.InDelta(t, want[i], EnthalpyAtSSO(p), 1e-6, "pressure %g dbar", p)
	}
}
