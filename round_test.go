package f32

import "testing"

func TestTrunc(t *testing.T) {
	tests := []struct {
		name     string
		in       F32
		expected F32
	}{
		{"positive fraction", fromF64(3.7), FromInt32(3)},
		{"negative fraction", fromF64(-3.7), FromInt32(-3)},
		{"already integer", FromInt32(5), FromInt32(5)},
		{"small positive", fromF64(0.4), Zero},
		{"small negative", fromF64(-0.4), NegZero},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Trunc(test.in)
			if uint32(got) != uint32(test.expected) {
				t.Errorf("Trunc(%v) = %v (0x%08X), want %v (0x%08X)", test.in, got, uint32(got), test.expected, uint32(test.expected))
			}
		})
	}
}

func TestFloorCeil(t *testing.T) {
	x := fromF64(3.7)
	if got := Floor(x); !Equal(got, FromInt32(3)) {
		t.Errorf("Floor(3.7) = %v, want 3", got)
	}
	if got := Ceil(x); !Equal(got, FromInt32(4)) {
		t.Errorf("Ceil(3.7) = %v, want 4", got)
	}
	neg := fromF64(-3.7)
	if got := Floor(neg); !Equal(got, FromInt32(-4)) {
		t.Errorf("Floor(-3.7) = %v, want -4", got)
	}
	if got := Ceil(neg); !Equal(got, FromInt32(-3)) {
		t.Errorf("Ceil(-3.7) = %v, want -3", got)
	}
}

func TestRoundTiesToEven(t *testing.T) {
	if got := Round(fromF64(2.5)); !Equal(got, FromInt32(2)) {
		t.Errorf("Round(2.5) = %v, want 2 (tie to even)", got)
	}
	if got := Round(fromF64(3.5)); !Equal(got, FromInt32(4)) {
		t.Errorf("Round(3.5) = %v, want 4 (tie to even)", got)
	}
	if got := Round(fromF64(2.6)); !Equal(got, FromInt32(3)) {
		t.Errorf("Round(2.6) = %v, want 3", got)
	}
}

func TestFmod(t *testing.T) {
	a := FromInt32(7)
	b := FromInt32(3)
	got := Fmod(a, b)
	want := FromInt32(1)
	if !Equal(got, want) {
		t.Errorf("Fmod(7, 3) = %v, want 1", got)
	}
	if got := Fmod(One, Zero); !got.IsNaN() {
		t.Errorf("Fmod(1, 0) = %v, want NaN", got)
	}
}

func TestRemainderQuotient(t *testing.T) {
	rem, q := RemainderQuotient(FromInt32(7), FromInt32(3))
	if q != 2 {
		t.Errorf("RemainderQuotient(7, 3) quotient = %d, want 2", q)
	}
	if !Equal(rem, FromInt32(1)) {
		t.Errorf("RemainderQuotient(7, 3) remainder = %v, want 1", rem)
	}
}
