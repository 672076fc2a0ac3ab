// Package geometry is a small 3D vector and rotation layer built purely
// on top of the f32 package's deterministic primitives. Nothing here
// touches the host FPU; every operation is composed from f32.Add,
// f32.Mul, f32.Sqrt and the trigonometric functions, so results stay
// bit-identical across platforms the same way f32 itself does.
package geometry

import "github.com/detsim/f32"

// Vector3 is a 3-component vector of deterministic binary32 values.
type Vector3 struct {
	X, Y, Z f32.F32
}

// Zero3 is the additive identity vector.
var Zero3 = Vector3{f32.Zero, f32.Zero, f32.Zero}

// Add returns v + w, component-wise.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{f32.Add(v.X, w.X), f32.Add(v.Y, w.Y), f32.Add(v.Z, w.Z)}
}

// Sub returns v - w, component-wise.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{f32.Sub(v.X, w.X), f32.Sub(v.Y, w.Y), f32.Sub(v.Z, w.Z)}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s f32.F32) Vector3 {
	return Vector3{f32.Mul(v.X, s), f32.Mul(v.Y, s), f32.Mul(v.Z, s)}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) f32.F32 {
	sum := f32.Mul(v.X, w.X)
	sum = f32.Add(sum, f32.Mul(v.Y, w.Y))
	sum = f32.Add(sum, f32.Mul(v.Z, w.Z))
	return sum
}

// Cross returns the cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: f32.Sub(f32.Mul(v.Y, w.Z), f32.Mul(v.Z, w.Y)),
		Y: f32.Sub(f32.Mul(v.Z, w.X), f32.Mul(v.X, w.Z)),
		Z: f32.Sub(f32.Mul(v.X, w.Y), f32.Mul(v.Y, w.X)),
	}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector3) LengthSquared() f32.F32 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() f32.F32 {
	return f32.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length. A zero vector normalizes to
// itself rather than producing NaN from a 0/0 division.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length.IsZero() {
		return v
	}
	return v.Scale(f32.Div(f32.One, length))
}

// Lerp returns the linear interpolation between a and b at parameter t.
func Lerp(a, b Vector3, t f32.F32) Vector3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Equal reports whether v and w are equal component-wise, per f32.Equal's
// NaN and signed-zero rules.
func (v Vector3) Equal(w Vector3) bool {
	return f32.Equal(v.X, w.X) && f32.Equal(v.Y, w.Y) && f32.Equal(v.Z, w.Z)
}
