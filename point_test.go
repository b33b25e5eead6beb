package turtle

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, 6)
	if got := p.Add(q); got != Pt(5, 8) {
		t.Errorf("%v.Add(%v) = %v, want (5, 8)", p, q, got)
	}
	if got := q.Sub(p); got != Pt(3, 4) {
		t.Errorf("%v.Sub(%v) = %v, want (3, 4)", q, p, got)
	}
	if got := p.Mul(-2); got != Pt(-2, -4) {
		t.Errorf("%v.Mul(-2) = %v, want (-2, -4)", p, got)
	}
	if got := q.Sub(p).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("%v.Distance(%v) = %v, want 5", p, q, got)
	}
}

func TestPointApprox(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want bool
	}{
		{"equal", Pt(1, 1), Pt(1, 1), true},
		{"within", Pt(1, 1), Pt(1+1e-10, 1-1e-10), true},
		{"x off", Pt(1, 1), Pt(1.1, 1), false},
		{"y off", Pt(1, 1), Pt(1, 0.9), false},
		{"nan", Pt(math.NaN(), 0), Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Approx(tt.q, 1e-9); got != tt.want {
				t.Errorf("%v.Approx(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}
