package f32

import "math"

// Canonical distinguished values. Every NaN-producing operation in this
// package returns exactly the NaN pattern below; reimplementations
// elsewhere must match this raw pattern for structural equality to hold
// across systems.
const (
	Zero      F32 = 0x00000000
	One       F32 = 0x3F800000
	MinusOne  F32 = 0xBF800000
	PosInf    F32 = 0x7F800000
	NegInf    F32 = 0xFF800000
	NaN       F32 = 0xFFC00000
	MaxValue  F32 = 0x7F7FFFFF
	MinValue  F32 = 0xFF7FFFFF
	AbsEps    F32 = 0x00000001 // smallest positive subnormal
	Eps       F32 = 0x00800000 // smallest positive normal
	NegZero   F32 = 0x80000000
	Two       F32 = 0x40000000
	Half      F32 = 0x3F000000
	NegOne    F32 = MinusOne
	ThreeHalf F32 = 0x3FC00000
)

// Transcendental and trigonometric constants, stored as raw binary32
// words. These are the same bit patterns as the IEEE-754 single-precision
// renderings of the named mathematical constants and are reproduced
// widely across game- and simulation-math libraries.
const (
	Pi        F32 = 0x40490FDB
	HalfPi    F32 = 0x3FC90FDB
	QuarterPi F32 = 0x3F490FDB
	TwoPi     F32 = 0x40C90FDB
	E         F32 = 0x402DF854
	Ln2       F32 = 0x3F317218
	Ln10      F32 = 0x40135D8E
	Log2E     F32 = 0x3FB8AA3B
	Log10E    F32 = 0x3EDE5BD9
	Sqrt2     F32 = 0x3FB504F3
	DegToRad  F32 = 0x3C8EFA35
	RadToDeg  F32 = 0x42652EE1

	// CalcEpsilon is the base tolerance the conformance suite uses when
	// comparing F32 results against host float32 results; CalcEpsilonSq
	// is its square.
	CalcEpsilon   F32 = 0x358637BD // ~1e-6
	CalcEpsilonSq F32 = 0x2B8CBCCC // ~1e-12
)

// Polynomial coefficients for the transcendental and trigonometric
// approximations in transcendental.go and trig.go. These are computed
// once, at package initialization, from their canonical decimal literals
// and never touched again — there is no lazy, first-use-dependent table
// anywhere in this package; only the *mechanism* Go offers for expressing
// an exact binary32 bit pattern from a decimal literal (there being no way
// to write an F32 raw-word constant from a non-hex decimal at compile
// time) differs from a literal hex table.
var (
	// exp(x) reduction and minimax polynomial (cephes-derived single
	// precision expf), evaluated entirely in F32 arithmetic.
	expC1 = fromF64(0.693359375)
	expC2 = fromF64(-2.12194440e-4)
	expP0 = fromF64(1.9875691500e-4)
	expP1 = fromF64(1.3981999507e-3)
	expP2 = fromF64(8.3334519073e-3)
	expP3 = fromF64(4.1665795894e-2)
	expP4 = fromF64(1.6666665459e-1)
	expP5 = fromF64(5.0000001201e-1)

	// log(x) reduction and minimax polynomial (cephes-derived single
	// precision logf).
	logSqrtHalf = fromF64(0.707106781186547524)
	logP0       = fromF64(7.0376836292e-2)
	logP1       = fromF64(-1.1514610310e-1)
	logP2       = fromF64(1.1676998740e-1)
	logP3       = fromF64(-1.2420140846e-1)
	logP4       = fromF64(1.4249322787e-1)
	logP5       = fromF64(-1.6668057665e-1)
	logP6       = fromF64(2.0000714765e-1)
	logP7       = fromF64(-2.4999993993e-1)
	logP8       = fromF64(3.3333331174e-1)
	logQ1       = fromF64(-2.12194440e-4)
	logQ2       = fromF64(0.693359375)

	// sin(x) reduction and minimax polynomial (cephes-derived single
	// precision sinf), evaluated on a range-reduced argument.
	sinCof0    = fromF64(-1.9515295891e-4)
	sinCof1    = fromF64(8.3321608736e-3)
	sinCof2    = fromF64(-1.6666654611e-1)
	fourOverPi = fromF64(1.27323954473516)
	sinDP1     = fromF64(0.78515625)
	sinDP2     = fromF64(2.4187564849853515625e-4)
	sinDP3     = fromF64(3.77489497744594108e-8)
	cosCof0    = fromF64(2.443315711809948e-5)
	cosCof1    = fromF64(-1.388731625493765e-3)
	cosCof2    = fromF64(4.166664568298827e-2)

	// atan(x) minimax polynomial, valid on [-1, 1] (max error
	// ~1.2e-5 rad), combined with the spec's 1/x reduction for
	// |x| > 1.
	atanC1 = fromF64(0.9998660)
	atanC2 = fromF64(-0.3302995)
	atanC3 = fromF64(0.1801410)
	atanC4 = fromF64(-0.0851330)
	atanC5 = fromF64(0.0208351)

	// Bounds and small-coefficient helpers used by Exp/Expm1/Log1p.
	overflowBound    = fromF64(88.7228)    // ln(Max)
	underflowBound   = fromF64(-103.97208) // ln(2^-150), half the smallest positive subnormal
	smallSeriesBound = fromF64(0.03125)
	oneThird         = fromF64(1.0 / 3.0)
	quarter          = fromF64(0.25)
	oneSixth         = fromF64(1.0 / 6.0)
	oneTwentyFour    = fromF64(1.0 / 24.0)
)

// fromF64 computes the binary32 bit pattern of a float64 decimal literal
// once, at package-variable initialization time (before any exported
// function of this package can run), and never again.
func fromF64(v float64) F32 {
	return F32(math.Float32bits(float32(v)))
}
