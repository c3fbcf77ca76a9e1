package adcp

import "fmt"

// ShapeError reports input arrays whose dimensions disagree. It names the
// transform stage and the dimension kind so a failure in a long pipeline
// points at the offending input directly.
type ShapeError struct {
	Stage string // e.g. "beam2ins", "ins2earth", "magnetic"
	Dim   string // "samples" or "bins"
	Want  int
	Got   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s dimension mismatch: want %d, got %d", e.Stage, e.Dim, e.Want, e.Got)
}

// UnsupportedError reports an instrument configuration outside the supported
// envelope (concave transducer heads, beam counts other than four or five).
// These must fail fast rather than silently mis-transform.
type UnsupportedError struct {
	Stage  string
	Detail string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported configuration: %s", e.Stage, e.Detail)
}

// checkSameShape verifies that every matrix in ms has the same dimensions as
// the first. Returns a ShapeError naming the given stage on mismatch.
func checkSameShape(stage string, ms ...matrixDims) error {
	if len(ms) == 0 {
		return nil
	}
	r0, c0 := ms[0].Dims()
	for _, m := range ms[1:] {
		r, c := m.Dims()
		if r != r0 {
			return &ShapeError{Stage: stage, Dim: "samples", Want: r0, Got: r}
		}
		if c != c0 {
			return &ShapeError{Stage: stage, Dim: "bins", Want: c0, Got: c}
		}
	}
	return nil
}

// checkSampleCount verifies a per-sample attribute slice has length n.
func checkSampleCount(stage string, n, got int) error {
	if got != n {
		return &ShapeError{Stage: stage, Dim: "samples", Want: n, Got: got}
	}
	return nil
}

// matrixDims is the minimal surface checkSameShape needs.
type matrixDims interface {
	Dims() (r, c int)
}
