package f32

// Sin, Cos and the inverse trigonometric functions are all built from two
// primitives: a quadrant-reducing Sin (range-reduced to within one octant
// of zero, cephes-style) and a minimax Atan valid on [-1, 1]. Every other
// function in this file is expressed in terms of those two plus the
// arithmetic primitives, favoring the spec's stated identities over
// separate hand-tuned polynomials wherever an identity is given.

// Sin returns the sine of x, in radians.
func Sin(x F32) F32 {
	if x.IsNaN() || x.IsInfinity() {
		return NaN
	}
	if x.IsZero() {
		return x
	}

	sign := int32(1)
	ax := x
	if x.IsNegative() {
		sign = -1
		ax = x.Neg()
	}

	y := Floor(Mul(ax, fourOverPi))
	j := ToInt32(y)
	if j&1 != 0 {
		j++
		y = Add(y, One)
	}
	j &= 7
	if j > 3 {
		sign = -sign
		j -= 4
	}

	z := Sub(Sub(ax, Mul(y, sinDP1)), Mul(y, sinDP2))
	z = Sub(z, Mul(y, sinDP3))
	zz := Mul(z, z)

	var result F32
	if j == 1 || j == 2 {
		poly := cosCof0
		poly = Add(Mul(poly, zz), cosCof1)
		poly = Add(Mul(poly, zz), cosCof2)
		poly = Mul(poly, zz)
		poly = Mul(poly, zz)
		result = Sub(One, Mul(zz, Half))
		result = Add(result, poly)
	} else {
		poly := sinCof0
		poly = Add(Mul(poly, zz), sinCof1)
		poly = Add(Mul(poly, zz), sinCof2)
		poly = Mul(poly, zz)
		poly = Mul(poly, z)
		result = Add(z, poly)
	}

	if sign < 0 {
		result = result.Neg()
	}
	return result
}

// Cos returns the cosine of x, via the identity cos(x) == sin(x + pi/2).
func Cos(x F32) F32 {
	if x.IsNaN() || x.IsInfinity() {
		return NaN
	}
	return Sin(Add(x, HalfPi))
}

// Tan returns the tangent of x. Unlike Sin, this is not independently
// range-reduced: it is Sin(x)/Cos(x), inheriting whatever error both of
// those carry rather than getting its own hand-tuned reduction.
func Tan(x F32) F32 {
	return Div(Sin(x), Cos(x))
}

// Atan returns the arctangent of x, in radians, in [-pi/2, pi/2].
func Atan(x F32) F32 {
	if x.IsNaN() {
		return NaN
	}
	if x.IsZero() {
		return x
	}
	if x.IsPositiveInfinity() {
		return HalfPi
	}
	if x.IsNegativeInfinity() {
		return HalfPi.Neg()
	}

	negate := x.IsNegative()
	ax := x.Abs()

	invert := Greater(ax, One)
	arg := ax
	if invert {
		arg = Div(One, ax)
	}

	z := Mul(arg, arg)
	poly := atanC5
	poly = Add(Mul(poly, z), atanC4)
	poly = Add(Mul(poly, z), atanC3)
	poly = Add(Mul(poly, z), atanC2)
	poly = Add(Mul(poly, z), atanC1)
	result := Mul(arg, poly)

	if invert {
		result = Sub(HalfPi, result)
	}
	if negate {
		result = result.Neg()
	}
	return result
}

// Atan2 returns the angle, in radians, between the positive x-axis and
// the point (x, y), handling every axis and origin edge case explicitly
// rather than leaving them to the general formula's division by zero.
func Atan2(y, x F32) F32 {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.IsInfinity() && y.IsInfinity() {
		return atan2BothInfinite(y, x)
	}
	if y.IsInfinity() {
		if y.IsNegative() {
			return HalfPi.Neg()
		}
		return HalfPi
	}
	if x.IsInfinity() {
		if x.IsNegative() {
			if y.IsNegative() {
				return Pi.Neg()
			}
			return Pi
		}
		if y.IsNegative() {
			return NegZero
		}
		return Zero
	}
	if x.IsZero() && y.IsZero() {
		if y.IsNegative() {
			if x.IsNegative() {
				return Pi.Neg()
			}
			return NegZero
		}
		if x.IsNegative() {
			return Pi
		}
		return Zero
	}
	if x.IsZero() {
		if y.IsNegative() {
			return HalfPi.Neg()
		}
		return HalfPi
	}
	if y.IsZero() {
		if x.IsNegative() {
			if y.IsNegative() {
				return Pi.Neg()
			}
			return Pi
		}
		return y
	}

	r := Atan(Div(y, x))
	if x.IsNegative() {
		if y.IsNegative() {
			return Sub(r, Pi)
		}
		return Add(r, Pi)
	}
	return r
}

// atan2BothInfinite handles the four ±∞/±∞ combinations, each of which
// lands on one of the diagonal angles.
func atan2BothInfinite(y, x F32) F32 {
	switch {
	case !y.IsNegative() && !x.IsNegative():
		return QuarterPi
	case !y.IsNegative() && x.IsNegative():
		return Sub(Pi, QuarterPi)
	case y.IsNegative() && !x.IsNegative():
		return QuarterPi.Neg()
	default:
		return Sub(Pi, QuarterPi).Neg()
	}
}

// Asin returns the arcsine of x, in radians, in [-pi/2, pi/2].
func Asin(x F32) F32 {
	if x.IsNaN() || Greater(x.Abs(), One) {
		return NaN
	}
	return Sub(HalfPi, Acos(x))
}

// Acos returns the arccosine of x, in radians, in [0, pi].
func Acos(x F32) F32 {
	if x.IsNaN() || Greater(x.Abs(), One) {
		return NaN
	}
	if Equal(x, One) {
		return Zero
	}
	if Equal(x, MinusOne) {
		return Pi
	}
	return Atan2(Sqrt(Sub(One, Mul(x, x))), x)
}

// Hypot returns sqrt(x*x + y*y), rescaling by the larger magnitude first
// so that intermediate squaring does not overflow or underflow for
// inputs whose squares individually would.
func Hypot(x, y F32) F32 {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.IsInfinity() || y.IsInfinity() {
		return PosInf
	}
	ax, ay := x.Abs(), y.Abs()
	if ax.IsZero() && ay.IsZero() {
		return Zero
	}
	if Less(ax, ay) {
		ax, ay = ay, ax
	}
	ratio := Div(ay, ax)
	return Mul(ax, Sqrt(Add(One, Mul(ratio, ratio))))
}
