package adcp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/testutil"
)

func TestBeamToInstrument(t *testing.T) {
	t.Parallel()

	t.Run("uniform push yields pure vertical", func(t *testing.T) {
		t.Parallel()
		b := testutil.ConstMatrix(1, 4, 100)

		u, v, w, e, err := BeamToInstrument(b, b, b, b)
		require.NoError(t, err)

		wantW := 400.0 / (4.0 * math.Cos(20.0*math.Pi/180.0))
		for j := 0; j < 4; j++ {
			assert.InDelta(t, 0, u.At(0, j), 1e-12)
			assert.InDelta(t, 0, v.At(0, j), 1e-12)
			assert.InDelta(t, wantW, w.At(0, j), 1e-9)
			assert.InDelta(t, 0, e.At(0, j), 1e-12)
		}
	})

	t.Run("known beam differences", func(t *testing.T) {
		t.Parallel()
		b1 := testutil.ConstMatrix(1, 2, 150)
		b2 := testutil.ConstMatrix(1, 2, 50)
		b3 := testutil.ConstMatrix(1, 2, 80)
		b4 := testutil.ConstMatrix(1, 2, 120)

		u, v, w, e, err := BeamToInstrument(b1, b2, b3, b4)
		require.NoError(t, err)

		a := 1.0 / (2.0 * math.Sin(20.0*math.Pi/180.0))
		bc := 1.0 / (4.0 * math.Cos(20.0*math.Pi/180.0))
		d := a / math.Sqrt2
		assert.InDelta(t, a*100, u.At(0, 0), 1e-9)
		assert.InDelta(t, a*40, v.At(0, 0), 1e-9)
		assert.InDelta(t, bc*400, w.At(0, 0), 1e-9)
		assert.InDelta(t, d*0, e.At(0, 0), 1e-9)
	})

	t.Run("linearity in the beam inputs", func(t *testing.T) {
		t.Parallel()
		b1 := mat.NewDense(2, 3, []float64{10, -20, 30, 5, 15, -25})
		b2 := mat.NewDense(2, 3, []float64{-5, 25, 10, 20, -10, 5})
		b3 := mat.NewDense(2, 3, []float64{15, 5, -10, -30, 20, 10})
		b4 := mat.NewDense(2, 3, []float64{20, -15, 5, 10, 25, -20})

		u1, v1, w1, e1, err := BeamToInstrument(b1, b2, b3, b4)
		require.NoError(t, err)

		const k = 3.5
		scale := func(m *mat.Dense) *mat.Dense {
			var out mat.Dense
			out.Scale(k, m)
			return &out
		}
		u2, v2, w2, e2, err := BeamToInstrument(scale(b1), scale(b2), scale(b3), scale(b4))
		require.NoError(t, err)

		testutil.AssertMatrixInDelta(t, scale(u1), u2, 1e-9)
		testutil.AssertMatrixInDelta(t, scale(v1), v2, 1e-9)
		testutil.AssertMatrixInDelta(t, scale(w1), w2, 1e-9)
		testutil.AssertMatrixInDelta(t, scale(e1), e2, 1e-9)
	})

	t.Run("bin count mismatch fails with ShapeError", func(t *testing.T) {
		t.Parallel()
		b1 := testutil.ConstMatrix(2, 4, 1)
		b2 := testutil.ConstMatrix(2, 4, 1)
		b3 := testutil.ConstMatrix(2, 3, 1)
		b4 := testutil.ConstMatrix(2, 4, 1)

		_, _, _, _, err := BeamToInstrument(b1, b2, b3, b4)
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "beam2ins", shapeErr.Stage)
		assert.Equal(t, "bins", shapeErr.Dim)
	})

	t.Run("sample count mismatch fails with ShapeError", func(t *testing.T) {
		t.Parallel()
		b1 := testutil.ConstMatrix(2, 4, 1)
		b2 := testutil.ConstMatrix(3, 4, 1)

		_, _, _, _, err := BeamToInstrument(b1, b2, b1, b1)
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "samples", shapeErr.Dim)
	})

	t.Run("concave head fails fast", func(t *testing.T) {
		t.Parallel()
		b := testutil.ConstMatrix(1, 2, 1)

		_, _, _, _, err := BeamToInstrumentHead(b, b, b, b, HeadConcave)
		var unsupported *UnsupportedError
		require.ErrorAs(t, err, &unsupported)
	})
}

func TestProfileMatrix(t *testing.T) {
	t.Parallel()

	m := ProfileMatrix([]float64{1, 2, 3})
	r, c := m.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2.0, m.At(0, 1))
}
