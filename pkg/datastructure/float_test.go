package datastructure

import "testing"

func TestFloatComparators(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
		eq   bool
		lt   bool
		gt   bool
	}{
		{name: "equal within epsilon", a: 1.0, b: 1.0 + 1e-9, eq: true},
		{name: "clearly less", a: 1.0, b: 2.0, lt: true},
		{name: "clearly greater", a: 3.0, b: 2.0, gt: true},
		{name: "exactly equal", a: 0.0, b: 0.0, eq: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eq(tt.a, tt.b); got != tt.eq {
				t.Errorf("Eq(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.eq)
			}
			if got := Lt(tt.a, tt.b); got != tt.lt {
				t.Errorf("Lt(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.lt)
			}
			if got := Gt(tt.a, tt.b); got != tt.gt {
				t.Errorf("Gt(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.gt)
			}
			if got := Le(tt.a, tt.b); got != (tt.lt || tt.eq) {
				t.Errorf("Le(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.lt || tt.eq)
			}
			if got := Ge(tt.a, tt.b); got != (tt.gt || tt.eq) {
				t.Errorf("Ge(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.gt || tt.eq)
			}
		})
	}
}
