package turtle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const eps = 1e-9

// stateOpts compares turtles and segments field by field, tolerating
// floating point noise and nil-vs-empty histories.
var stateOpts = []cmp.Option{
	cmp.AllowUnexported(Turtle{}, LineSegment{}),
	cmpopts.EquateApprox(0, eps),
	cmpopts.EquateEmpty(),
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(a, b, tol float64) bool {
	d := a - b
	return d <= tol && d >= -tol
}
