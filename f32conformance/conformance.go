// Package f32conformance is a randomized-vector test harness that checks
// f32 package results against the host float32 implementation within a
// documented tolerance. It is deliberately outside the f32 package: the
// harness's own sampling strategy is allowed to use the host FPU and
// math/rand freely, since none of that ever participates in an f32
// arithmetic path, only in generating inputs and comparing outputs.
package f32conformance

import (
	"fmt"
	"math/rand"

	"github.com/detsim/f32"
)

// MagnitudeBand names a range of exponents to sample raw operands from,
// so a run exercises subnormals, ordinary values, and near-overflow
// values in proportion rather than only ever landing near 1.0.
type MagnitudeBand struct {
	Name        string
	MinExponent int // biased exponent, 0 for subnormals
	MaxExponent int // biased exponent, up to 254
}

// DefaultMagnitudeBands covers subnormals, small, ordinary, and large
// magnitudes.
var DefaultMagnitudeBands = []MagnitudeBand{
	{Name: "subnormal", MinExponent: 0, MaxExponent: 0},
	{Name: "small", MinExponent: 1, MaxExponent: 96},
	{Name: "ordinary", MinExponent: 97, MaxExponent: 159},
	{Name: "large", MinExponent: 160, MaxExponent: 254},
}

// Config controls a conformance run. It never influences any f32
// operation; it only shapes which raw words the harness samples and how
// strictly it compares results.
type Config struct {
	SampleCount int
	Bands       []MagnitudeBand
	Tolerance   f32.F32 // base absolute tolerance, scaled per sample by magnitude; see scaledTolerance.
	Seed        int64
}

// DefaultConfig returns a Config matching this package's recommended
// baseline run: 100,000 samples per operation across DefaultMagnitudeBands,
// compared with a base tolerance of f32.CalcEpsilon, scaled up for
// large-magnitude expected results.
func DefaultConfig() Config {
	return Config{
		SampleCount: 100000,
		Bands:       DefaultMagnitudeBands,
		Tolerance:   f32.CalcEpsilon,
		Seed:        1,
	}
}

// Mismatch records one sampled case whose f32 result diverged from the
// host float32 result by more than the run's tolerance.
type Mismatch struct {
	A, B f32.F32
	Got  f32.F32
	Want f32.F32
	Diff f32.F32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("a=%s b=%s got=%s want=%s diff=%s", m.A, m.B, m.Got, m.Want, m.Diff)
}

// Report summarizes a conformance run.
type Report struct {
	Checked    int
	Mismatches []Mismatch
}

// Passed reports whether every sampled case was within tolerance.
func (r Report) Passed() bool {
	return len(r.Mismatches) == 0
}

// BinaryOp is a two-operand f32 function under test, paired with the host
// float32 function it is expected to agree with.
type BinaryOp struct {
	Name string
	F32  func(a, b f32.F32) f32.F32
	Host func(a, b float32) float32
}

// RunBinary samples cfg.SampleCount raw operand pairs across cfg.Bands and
// compares op.F32 against op.Host, returning every case outside cfg.Tolerance.
func RunBinary(cfg Config, op BinaryOp) Report {
	rng := rand.New(rand.NewSource(cfg.Seed))
	report := Report{}

	for i := 0; i < cfg.SampleCount; i++ {
		a := sampleRaw(rng, cfg.Bands)
		b := sampleRaw(rng, cfg.Bands)
		report.Checked++

		got := op.F32(a, b)
		want := f32.FromFloatBits(op.Host(f32.ToFloatBits(a), f32.ToFloatBits(b)))

		if !withinTolerance(got, want, scaledTolerance(want, cfg.Tolerance)) {
			report.Mismatches = append(report.Mismatches, Mismatch{
				A: a, B: b, Got: got, Want: want,
				Diff: f32.Sub(got, want).Abs(),
			})
		}
	}
	return report
}

// UnaryOp is a one-operand f32 function under test, paired with the host
// float32 function it is expected to agree with.
type UnaryOp struct {
	Name string
	F32  func(a f32.F32) f32.F32
	Host func(a float32) float32
}

// RunUnary samples cfg.SampleCount raw operands across cfg.Bands and
// compares op.F32 against op.Host, returning every case outside cfg.Tolerance.
func RunUnary(cfg Config, op UnaryOp) Report {
	rng := rand.New(rand.NewSource(cfg.Seed))
	report := Report{}

	for i := 0; i < cfg.SampleCount; i++ {
		a := sampleRaw(rng, cfg.Bands)
		report.Checked++

		got := op.F32(a)
		want := f32.FromFloatBits(op.Host(f32.ToFloatBits(a)))

		if !withinTolerance(got, want, scaledTolerance(want, cfg.Tolerance)) {
			report.Mismatches = append(report.Mismatches, Mismatch{
				A: a, Got: got, Want: want,
				Diff: f32.Sub(got, want).Abs(),
			})
		}
	}
	return report
}

// scaledTolerance widens base for large-magnitude expected results, so a
// run doesn't flag results whose absolute error grows with magnitude even
// though their relative error stays tiny: max(base * 2^ceil(log2(|want|+1)), base).
func scaledTolerance(want, base f32.F32) f32.F32 {
	if !want.IsFinite() {
		return base
	}
	magnitude := f32.Add(want.Abs(), f32.One)
	scale := f32.Exp2(f32.Ceil(f32.Log2(magnitude)))
	return f32.Max(f32.Mul(base, scale), base)
}

func withinTolerance(got, want, tolerance f32.F32) bool {
	if got.IsNaN() && want.IsNaN() {
		return true
	}
	if got.IsNaN() || want.IsNaN() {
		return false
	}
	if f32.Equal(got, want) {
		return true
	}
	return f32.LessEqual(f32.Sub(got, want).Abs(), tolerance)
}

func sampleRaw(rng *rand.Rand, bands []MagnitudeBand) f32.F32 {
	band := bands[rng.Intn(len(bands))]
	span := band.MaxExponent - band.MinExponent + 1
	exponent := band.MinExponent
	if span > 1 {
		exponent += rng.Intn(span)
	}
	mantissa := rng.Uint32() & 0x007FFFFF
	sign := uint32(0)
	if rng.Intn(2) == 1 {
		sign = 1
	}
	raw := (sign << 31) | (uint32(exponent) << 23) | mantissa
	return f32.FromRaw(raw)
}
