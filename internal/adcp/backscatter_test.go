package adcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBackscatter(t *testing.T) {
	t.Parallel()

	raw := mat.NewDense(2, 3, []float64{100, 120, 140, 90, 110, 130})

	t.Run("scalar scale broadcasts", func(t *testing.T) {
		t.Parallel()
		dB, err := Backscatter(raw, []float64{0.45})
		require.NoError(t, err)

		assert.InDelta(t, 45.0, dB.At(0, 0), 1e-12)
		assert.InDelta(t, 58.5, dB.At(1, 2), 1e-12)
	})

	t.Run("per-sample scale factors", func(t *testing.T) {
		t.Parallel()
		dB, err := Backscatter(raw, []float64{0.45, 0.61})
		require.NoError(t, err)

		assert.InDelta(t, 45.0, dB.At(0, 0), 1e-12)
		assert.InDelta(t, 54.9, dB.At(1, 0), 1e-12)
	})

	t.Run("scale count mismatch fails", func(t *testing.T) {
		t.Parallel()
		_, err := Backscatter(raw, []float64{0.45, 0.61, 0.5})
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "backscatter", shapeErr.Stage)
	})

	t.Run("empty scale fails", func(t *testing.T) {
		t.Parallel()
		_, err := Backscatter(raw, nil)
		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
	})
}
