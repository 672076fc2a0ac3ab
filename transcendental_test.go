package f32

import (
	"math"
	"testing"
)

const transcendentalTolerance = 1e-3

func closeToHost(t *testing.T, name string, got F32, wantHost float64) {
	t.Helper()
	if got.IsNaN() {
		if !math.IsNaN(wantHost) {
			t.Errorf("%s = NaN, want %v", name, wantHost)
		}
		return
	}
	gotHost := float64(ToFloatBits(got))
	diff := math.Abs(gotHost - wantHost)
	rel := diff
	if math.Abs(wantHost) > 1 {
		rel = diff / math.Abs(wantHost)
	}
	if rel > transcendentalTolerance {
		t.Errorf("%s = %v, want ~%v (diff %v)", name, gotHost, wantHost, diff)
	}
}

func TestExpBasic(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 2, -2, 0.5, 10, -10} {
		got := Exp(fromF64(x))
		closeToHost(t, "Exp", got, math.Exp(x))
	}
}

func TestExpSpecial(t *testing.T) {
	if got := Exp(Zero); !Equal(got, One) {
		t.Errorf("Exp(0) = %v, want 1", got)
	}
	if got := Exp(NegInf); !Equal(got, Zero) {
		t.Errorf("Exp(-Inf) = %v, want 0", got)
	}
	if got := Exp(PosInf); !Equal(got, PosInf) {
		t.Errorf("Exp(+Inf) = %v, want +Inf", got)
	}
}

func TestLogBasic(t *testing.T) {
	for _, x := range []float64{1, 2, 0.5, 10, 100, 0.001} {
		got := Log(fromF64(x))
		closeToHost(t, "Log", got, math.Log(x))
	}
}

func TestLogSpecial(t *testing.T) {
	if got := Log(One); !Equal(got, Zero) {
		t.Errorf("Log(1) = %v, want 0", got)
	}
	if got := Log(Zero); !Equal(got, NegInf) {
		t.Errorf("Log(0) = %v, want -Inf", got)
	}
	if got := Log(MinusOne); !got.IsNaN() {
		t.Errorf("Log(-1) = %v, want NaN", got)
	}
}

func TestLog2Basic(t *testing.T) {
	for _, x := range []float64{1, 2, 4, 8, 0.5, 0.25, 100} {
		got := Log2(fromF64(x))
		closeToHost(t, "Log2", got, math.Log2(x))
	}
}

func TestExpm1AndLog1pSmall(t *testing.T) {
	for _, x := range []float64{0, 1e-4, -1e-4, 0.01, -0.01} {
		gotE := Expm1(fromF64(x))
		closeToHost(t, "Expm1", gotE, math.Expm1(x))
		gotL := Log1p(fromF64(x))
		closeToHost(t, "Log1p", gotL, math.Log1p(x))
	}
}

func TestPowBasic(t *testing.T) {
	cases := []struct{ x, y float64 }{
		{2, 10}, {2, 0.5}, {10, 2}, {0.5, 3}, {4, 0.5},
	}
	for _, c := range cases {
		got := Pow(fromF64(c.x), fromF64(c.y))
		closeToHost(t, "Pow", got, math.Pow(c.x, c.y))
	}
}

func TestPowEdgeCases(t *testing.T) {
	if got := Pow(FromInt32(5), Zero); !Equal(got, One) {
		t.Errorf("Pow(5, 0) = %v, want 1", got)
	}
	if got := Pow(NaN, Zero); !Equal(got, One) {
		t.Errorf("Pow(NaN, 0) = %v, want 1", got)
	}
	if got := Pow(One, NaN); !Equal(got, One) {
		t.Errorf("Pow(1, NaN) = %v, want 1", got)
	}
	if got := Pow(Zero, One); !Equal(got, Zero) {
		t.Errorf("Pow(0, 1) = %v, want 0", got)
	}
	if got := Pow(Zero, MinusOne); !Equal(got, PosInf) {
		t.Errorf("Pow(0, -1) = %v, want +Inf", got)
	}
	if got := Pow(MinusOne, Half); !got.IsNaN() {
		t.Errorf("Pow(-1, 0.5) = %v, want NaN", got)
	}
	if got := Pow(MinusOne, Two); !Equal(got, One) {
		t.Errorf("Pow(-1, 2) = %v, want 1", got)
	}
	if got := Pow(MinusOne, FromInt32(3)); !Equal(got, MinusOne) {
		t.Errorf("Pow(-1, 3) = %v, want -1", got)
	}
}
