package adcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/testutil"
)

func TestInstrumentToEarth(t *testing.T) {
	t.Parallel()

	u := mat.NewDense(1, 3, []float64{100, -50, 20})
	v := mat.NewDense(1, 3, []float64{30, 60, -90})
	w := mat.NewDense(1, 3, []float64{-10, 40, 70})

	t.Run("zero attitude is the identity", func(t *testing.T) {
		t.Parallel()
		uu, vv, ww, err := InstrumentToEarth(u, v, w,
			[]float64{0}, []float64{0}, []float64{0}, []bool{false})
		require.NoError(t, err)

		testutil.AssertMatrixInDelta(t, u, uu, 1e-12)
		testutil.AssertMatrixInDelta(t, v, vv, 1e-12)
		testutil.AssertMatrixInDelta(t, w, ww, 1e-12)
	})

	t.Run("ninety degree heading swaps horizontal axes", func(t *testing.T) {
		t.Parallel()
		uu, vv, ww, err := InstrumentToEarth(u, v, w,
			[]float64{90}, []float64{0}, []float64{0}, []bool{false})
		require.NoError(t, err)

		var negU mat.Dense
		negU.Scale(-1, u)
		testutil.AssertMatrixInDelta(t, v, uu, 1e-9)
		testutil.AssertMatrixInDelta(t, &negU, vv, 1e-9)
		testutil.AssertMatrixInDelta(t, w, ww, 1e-9)
	})

	t.Run("upward orientation flips east and vertical", func(t *testing.T) {
		t.Parallel()
		uu, vv, ww, err := InstrumentToEarth(u, v, w,
			[]float64{0}, []float64{0}, []float64{0}, []bool{true})
		require.NoError(t, err)

		var negU, negW mat.Dense
		negU.Scale(-1, u)
		negW.Scale(-1, w)
		testutil.AssertMatrixInDelta(t, &negU, uu, 1e-9)
		testutil.AssertMatrixInDelta(t, v, vv, 1e-9)
		testutil.AssertMatrixInDelta(t, &negW, ww, 1e-9)
	})

	t.Run("upward flag equals adding 180 degrees of roll", func(t *testing.T) {
		// The pitch recomputation uses the raw roll, so the equivalence is
		// exact when pitch is zero.
		t.Parallel()
		uuFlag, vvFlag, wwFlag, err := InstrumentToEarth(u, v, w,
			[]float64{45}, []float64{0}, []float64{30}, []bool{true})
		require.NoError(t, err)

		uuRoll, vvRoll, wwRoll, err := InstrumentToEarth(u, v, w,
			[]float64{45}, []float64{0}, []float64{210}, []bool{false})
		require.NoError(t, err)

		testutil.AssertMatrixInDelta(t, uuRoll, uuFlag, 1e-9)
		testutil.AssertMatrixInDelta(t, vvRoll, vvFlag, 1e-9)
		testutil.AssertMatrixInDelta(t, wwRoll, wwFlag, 1e-9)
	})

	t.Run("rotation preserves velocity magnitude", func(t *testing.T) {
		t.Parallel()
		uu, vv, ww, err := InstrumentToEarth(u, v, w,
			[]float64{37.5}, []float64{8.2}, []float64{-12.4}, []bool{false})
		require.NoError(t, err)

		want := testutil.Magnitudes(u, v, w)
		got := testutil.Magnitudes(uu, vv, ww)
		testutil.AssertMatrixInDelta(t, want, got, 1e-9)
	})

	t.Run("magnitude preserved for upward looking attitude", func(t *testing.T) {
		t.Parallel()
		uu, vv, ww, err := InstrumentToEarth(u, v, w,
			[]float64{312.0}, []float64{-5.5}, []float64{170.0}, []bool{true})
		require.NoError(t, err)

		want := testutil.Magnitudes(u, v, w)
		got := testutil.Magnitudes(uu, vv, ww)
		testutil.AssertMatrixInDelta(t, want, got, 1e-9)
	})

	t.Run("per-sample attitudes stay independent", func(t *testing.T) {
		t.Parallel()
		u2 := mat.NewDense(2, 2, []float64{100, 50, 100, 50})
		v2 := mat.NewDense(2, 2, []float64{-20, 80, -20, 80})
		w2 := mat.NewDense(2, 2, []float64{10, -40, 10, -40})

		// Identical bins with different headings must rotate differently.
		uu, vv, _, err := InstrumentToEarth(u2, v2, w2,
			[]float64{0, 90}, []float64{0, 0}, []float64{0, 0}, []bool{false, false})
		require.NoError(t, err)

		assert.InDelta(t, 100, uu.At(0, 0), 1e-9)
		assert.InDelta(t, -20, vv.At(0, 0), 1e-9)
		assert.InDelta(t, -20, uu.At(1, 0), 1e-9)
		assert.InDelta(t, -100, vv.At(1, 0), 1e-9)
	})

	t.Run("attitude length mismatch fails with ShapeError", func(t *testing.T) {
		t.Parallel()
		_, _, _, err := InstrumentToEarth(u, v, w,
			[]float64{0, 0}, []float64{0}, []float64{0}, []bool{false})
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "ins2earth", shapeErr.Stage)
		assert.Equal(t, "samples", shapeErr.Dim)
	})

	t.Run("component shape mismatch fails with ShapeError", func(t *testing.T) {
		t.Parallel()
		short := mat.NewDense(1, 2, []float64{1, 2})
		_, _, _, err := InstrumentToEarth(u, v, short,
			[]float64{0}, []float64{0}, []float64{0}, []bool{false})
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "bins", shapeErr.Dim)
	})
}
