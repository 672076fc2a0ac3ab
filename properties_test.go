package f32

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each property below takes raw uint32 words directly, rather than
// rand.Float32, so testing/quick's generator hits subnormals and NaN
// payloads along with ordinary values.

func TestCommutativityOfAdd(t *testing.T) {
	f := func(a, b uint32) bool {
		fa, fb := FromRaw(a), FromRaw(b)
		left := Add(fa, fb)
		right := Add(fb, fa)
		if left.IsNaN() && right.IsNaN() {
			return true
		}
		return uint32(left) == uint32(right)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 5000}))
}

func TestCommutativityOfMul(t *testing.T) {
	f := func(a, b uint32) bool {
		fa, fb := FromRaw(a), FromRaw(b)
		left := Mul(fa, fb)
		right := Mul(fb, fa)
		if left.IsNaN() && right.IsNaN() {
			return true
		}
		return uint32(left) == uint32(right)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 5000}))
}

func TestRawRoundTripProperty(t *testing.T) {
	f := func(raw uint32) bool {
		v := FromRaw(raw)
		return ToRaw(v) == raw
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestNaNIsSticky(t *testing.T) {
	ops := []func(a, b F32) F32{Add, Sub, Mul, Div}
	f := func(a uint32) bool {
		fa := FromRaw(a)
		for _, op := range ops {
			if !op(NaN, fa).IsNaN() || !op(fa, NaN).IsNaN() {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 2000}))
}

func TestNegationInvolutionProperty(t *testing.T) {
	f := func(raw uint32) bool {
		v := FromRaw(raw)
		return uint32(v.Neg().Neg()) == uint32(v)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestIdentityElements(t *testing.T) {
	f := func(raw uint32) bool {
		v := FromRaw(raw)
		if v.IsNaN() {
			return Add(v, Zero).IsNaN() && Mul(v, One).IsNaN()
		}
		return Equal(Add(v, Zero), v) && Equal(Mul(v, One), v)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 5000}))
}

func TestMonotonicIntegerConversion(t *testing.T) {
	assert.True(t, Less(FromInt32(1), FromInt32(2)))
	assert.True(t, Less(FromInt32(-5), FromInt32(-4)))
	assert.True(t, Equal(FromInt32(0), Zero))
}
