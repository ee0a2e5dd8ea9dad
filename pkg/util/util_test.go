package util

import (
	"errors"
	"testing"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("root cause")
	err := WrapErrorf(orig, ErrNotFound, "lookup failed for id %d", 42)

	var uerr *Error
	if !errors.As(err, &uerr) {
		t.Fatal("wrapped error should be a *Error")
	}
	if uerr.Code() != ErrNotFound {
		t.Errorf("got code %v, want ErrNotFound", uerr.Code())
	}
	if !errors.Is(err, orig) {
		t.Error("wrapped error should unwrap to the original")
	}
	if err.Error() != "lookup failed for id 42" {
		t.Errorf("got message %q", err.Error())
	}
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3, 4}
	out := ReverseG(in)

	want := []int{4, 3, 2, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("got %v, want %v", out, want)
			break
		}
	}

	// input must be untouched
	if in[0] != 1 || in[3] != 4 {
		t.Errorf("input mutated: %v", in)
	}

	if got := ReverseG([]string{}); len(got) != 0 {
		t.Errorf("reverse of empty should be empty, got %v", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, 5); got != 3 {
		t.Errorf("Min(3,5) = %v", got)
	}
	if got := Max(3.5, 1.25); got != 3.5 {
		t.Errorf("Max(3.5,1.25) = %v", got)
	}
	if got := Min("b", "a"); got != "a" {
		t.Errorf("Min(b,a) = %v", got)
	}
}

func TestDegreeRadiansRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, -110.5, 180} {
		got := RadiansToDegree(DegreeToRadians(deg))
		if diff := got - deg; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("round trip of %v gave %v", deg, got)
		}
	}
}
