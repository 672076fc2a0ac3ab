package f32replay

import (
	"testing"

	"github.com/detsim/f32"
)

func TestCompactExpandRoundTrip(t *testing.T) {
	for _, h := range []float32{0, 1, -1, 0.5, 100, -100} {
		f := f32.FromFloatBits(h)
		bits := CompactHalf(f)
		back := ExpandHalf(bits)
		if f32.ToFloatBits(back) != h {
			t.Errorf("round trip of %v through half precision = %v", h, f32.ToFloatBits(back))
		}
	}
}

func TestCompactLossyForHighPrecision(t *testing.T) {
	f := f32.FromFloatBits(1.0000001)
	bits := CompactHalf(f)
	back := ExpandHalf(bits)
	if f32.Equal(back, f) {
		t.Error("expected CompactHalf to lose precision for a value binary16 cannot represent exactly")
	}
}

func TestCompactSaturatesOutOfRange(t *testing.T) {
	huge := f32.FromFloatBits(1e30)
	back := ExpandHalf(CompactHalf(huge))
	if !back.IsInfinity() {
		t.Errorf("CompactHalf of out-of-range value should saturate to infinity, got %v", back)
	}
}

func TestStreamAppendAndAt(t *testing.T) {
	s := NewStream(4)
	s.Append(f32.One)
	s.Append(f32.Two)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	v, err := s.At(0)
	if err != nil {
		t.Fatalf("At(0) error: %v", err)
	}
	if !f32.Equal(v, f32.One) {
		t.Errorf("At(0) = %v, want 1", v)
	}
}

func TestStreamAtOutOfRange(t *testing.T) {
	s := NewStream(1)
	s.Append(f32.One)
	if _, err := s.At(5); err == nil {
		t.Error("At(5) on a 1-element stream should return an error")
	}
}
