package f32

// Exp, Log, Log2 and Pow follow the structure used throughout the cephes
// single-precision libm family: reduce the argument into a small
// interval, evaluate a minimax polynomial there, then reconstruct the
// full-range result by direct exponent injection.
// All arithmetic is done with this package's own Add/Sub/Mul/Div so no
// host FPU operation can influence the result.

// Exp returns e**x.
func Exp(x F32) F32 {
	if x.IsNaN() {
		return NaN
	}
	if x.IsPositiveInfinity() {
		return PosInf
	}
	if x.IsNegativeInfinity() {
		return Zero
	}
	if x.IsZero() {
		return One
	}
	// Beyond these bounds the result has already overflowed/underflowed.
	if Greater(x, overflowBound) {
		return PosInf
	}
	if Less(x, underflowBound) {
		return Zero
	}

	k := Floor(Add(Mul(x, Log2E), Half))
	r := Sub(x, Mul(k, expC1))
	r = Sub(r, Mul(k, expC2))

	z := Mul(r, r)
	y := expP0
	y = Add(Mul(y, r), expP1)
	y = Add(Mul(y, r), expP2)
	y = Add(Mul(y, r), expP3)
	y = Add(Mul(y, r), expP4)
	y = Add(Mul(y, r), expP5)
	y = Add(Mul(y, z), r)
	y = Add(y, One)

	return scaleByPow2(y, ToInt32(k))
}

// Expm1 returns e**x - 1, computed directly for small |x| to avoid the
// cancellation Exp(x)-1 would suffer near zero.
func Expm1(x F32) F32 {
	if x.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		return x
	}
	if LessEqual(x.Abs(), smallSeriesBound) {
		// x + x^2/2 + x^3/6 + x^4/24
		x2 := Mul(x, x)
		x3 := Mul(x2, x)
		x4 := Mul(x3, x)
		term := Add(x, Mul(x2, Half))
		term = Add(term, Mul(x3, oneSixth))
		term = Add(term, Mul(x4, oneTwentyFour))
		return term
	}
	return Sub(Exp(x), One)
}

// Log returns the natural logarithm of x.
func Log(x F32) F32 {
	if x.IsNaN() || x.IsNegative() {
		return NaN
	}
	if x.IsZero() {
		return NegInf
	}
	if x.IsPositiveInfinity() {
		return PosInf
	}
	if Equal(x, One) {
		return Zero
	}

	_, exp, sig := decompose(x)
	m := pack(0, uint64(sig), mantissaLen, 0) // mantissa in [1, 2)
	e := exp

	if Less(m, logSqrtHalf) {
		e--
		m = Sub(Add(m, m), One)
	} else {
		m = Sub(m, One)
	}

	z := Mul(m, m)
	y := logP0
	y = Add(Mul(y, m), logP1)
	y = Add(Mul(y, m), logP2)
	y = Add(Mul(y, m), logP3)
	y = Add(Mul(y, m), logP4)
	y = Add(Mul(y, m), logP5)
	y = Add(Mul(y, m), logP6)
	y = Add(Mul(y, m), logP7)
	y = Add(Mul(y, m), logP8)
	y = Mul(y, m)
	y = Mul(y, z)

	fe := FromInt32(e)
	y = Add(y, Mul(fe, logQ1))
	y = Sub(y, Mul(z, Half))
	result := Add(m, y)
	result = Add(result, Mul(fe, logQ2))
	return result
}

// Log1p returns log(1+x), computed directly for small |x| to avoid
// cancellation.
func Log1p(x F32) F32 {
	if x.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		return x
	}
	if LessEqual(x.Abs(), smallSeriesBound) {
		x2 := Mul(x, x)
		x3 := Mul(x2, x)
		x4 := Mul(x3, x)
		term := Sub(x, Mul(x2, Half))
		term = Add(term, Mul(x3, oneThird))
		term = Sub(term, Mul(x4, quarter))
		return term
	}
	return Log(Add(One, x))
}

// Log2 returns the base-2 logarithm of x, via a dedicated reduction
// (decompose x into 2^k*(1+f), evaluate the natural-log polynomial in f,
// scale that by Log2E and add the exact integer k) rather than
// Log(x)*Log2E, so the result does not depend on Log's own
// range-reduction rounding.
func Log2(x F32) F32 {
	if x.IsNaN() || x.IsNegative() {
		return NaN
	}
	if x.IsZero() {
		return NegInf
	}
	if x.IsPositiveInfinity() {
		return PosInf
	}

	_, exp, sig := decompose(x)
	m := pack(0, uint64(sig), mantissaLen, 0) // m in [1, 2)
	e := exp

	if Less(m, logSqrtHalf) {
		e--
		m = Sub(Add(m, m), One)
	} else {
		m = Sub(m, One)
	}

	z := Mul(m, m)
	y := logP0
	y = Add(Mul(y, m), logP1)
	y = Add(Mul(y, m), logP2)
	y = Add(Mul(y, m), logP3)
	y = Add(Mul(y, m), logP4)
	y = Add(Mul(y, m), logP5)
	y = Add(Mul(y, m), logP6)
	y = Add(Mul(y, m), logP7)
	y = Add(Mul(y, m), logP8)
	y = Mul(y, m)
	y = Mul(y, z)
	y = Sub(y, Mul(z, Half))
	lnFrac := Add(m, y) // ln(1+f), f the reduced fraction

	return Add(FromInt32(e), Mul(lnFrac, Log2E))
}

// Exp2 returns 2**x.
func Exp2(x F32) F32 {
	return Exp(Mul(x, Ln2))
}

// Pow returns x**y, per the IEEE edge-case table: pow(x,0)=1 for any x
// (including NaN), pow(1,y)=1 for any y (including NaN), and so on.
func Pow(x, y F32) F32 {
	if y.IsZero() {
		return One
	}
	if Equal(x, One) {
		return One
	}
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		if y.IsNegative() {
			return PosInf
		}
		return Zero
	}
	if Equal(x, MinusOne) && (y.IsPositiveInfinity() || y.IsNegativeInfinity()) {
		return One
	}
	if x.IsPositiveInfinity() || x.IsNegativeInfinity() || y.IsPositiveInfinity() || y.IsNegativeInfinity() {
		return powInf(x, y)
	}

	yIsInt, yOdd := integerParity(y)
	if x.IsNegative() && !yIsInt {
		return NaN
	}

	mag := Exp2(Mul(y, Log2(x.Abs())))
	if x.IsNegative() && yOdd {
		return mag.Neg()
	}
	return mag
}

func powInf(x, y F32) F32 {
	absXGreaterOne := Greater(x.Abs(), One)
	switch {
	case y.IsPositiveInfinity():
		if absXGreaterOne {
			return PosInf
		}
		return Zero
	case y.IsNegativeInfinity():
		if absXGreaterOne {
			return Zero
		}
		return PosInf
	case x.IsPositiveInfinity():
		if y.IsNegative() {
			return Zero
		}
		return PosInf
	default: // x.IsNegativeInfinity()
		_, yOdd := integerParity(y)
		if y.IsNegative() {
			if yOdd {
				return NegZero
			}
			return Zero
		}
		if yOdd {
			return NegInf
		}
		return PosInf
	}
}

// integerParity reports whether y represents an integer and, if so,
// whether that integer is odd.
func integerParity(y F32) (isInt bool, isOdd bool) {
	t := Trunc(y)
	if !Equal(t, y) {
		return false, false
	}
	rem := Fmod(t, Two)
	return true, !rem.IsZero()
}

// scaleByPow2 multiplies y by 2**n via direct exponent injection, not by
// repeated multiplication, the reconstruction step Exp needs after
// evaluating its polynomial on the reduced argument.
func scaleByPow2(y F32, n int32) F32 {
	if y.IsZero() || y.IsNaN() || y.IsInfinity() {
		return y
	}
	sign, exp, sig := decompose(y)
	return pack(sign, uint64(sig), mantissaLen, exp+n)
}
