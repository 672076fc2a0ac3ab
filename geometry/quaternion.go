package geometry

import "github.com/detsim/f32"

// Quaternion is a Hamilton quaternion of deterministic binary32 values,
// used here as a rotation representation (a Versor is a Quaternion the
// caller has normalized to unit length via Normalize).
type Quaternion struct {
	X, Y, Z, W f32.F32
}

// IdentityQuaternion represents no rotation.
var IdentityQuaternion = Quaternion{f32.Zero, f32.Zero, f32.Zero, f32.One}

// FromAxisAngle builds a unit quaternion representing a rotation of angle
// radians about axis, which need not already be normalized.
func FromAxisAngle(axis Vector3, angle f32.F32) Quaternion {
	a := axis.Normalize()
	half := f32.Mul(angle, f32.Half)
	s := f32.Sin(half)
	c := f32.Cos(half)
	return Quaternion{
		X: f32.Mul(a.X, s),
		Y: f32.Mul(a.Y, s),
		Z: f32.Mul(a.Z, s),
		W: c,
	}
}

// Mul returns the Hamilton product q * r, which composes rotations so
// that applying the result to a vector is equivalent to applying r then q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: sub4(f32.Mul(q.W, r.W), f32.Mul(q.X, r.X), f32.Mul(q.Y, r.Y), f32.Mul(q.Z, r.Z)),
		X: add2sub2(f32.Mul(q.W, r.X), f32.Mul(q.X, r.W), f32.Mul(q.Y, r.Z), f32.Mul(q.Z, r.Y)),
		Y: add2sub2(f32.Mul(q.W, r.Y), f32.Mul(q.Y, r.W), f32.Mul(q.Z, r.X), f32.Mul(q.X, r.Z)),
		Z: add2sub2(f32.Mul(q.W, r.Z), f32.Mul(q.Z, r.W), f32.Mul(q.X, r.Y), f32.Mul(q.Y, r.X)),
	}
}

func sub4(a, b, c, d f32.F32) f32.F32 {
	return f32.Sub(f32.Sub(f32.Sub(a, b), c), d)
}

func add2sub2(a, b, c, d f32.F32) f32.F32 {
	return f32.Sub(f32.Add(a, b), f32.Sub(d, c))
}

// Conjugate returns the conjugate of q, which is also its inverse when q
// is a unit quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.X.Neg(), q.Y.Neg(), q.Z.Neg(), q.W}
}

// LengthSquared returns the squared magnitude of q.
func (q Quaternion) LengthSquared() f32.F32 {
	sum := f32.Mul(q.X, q.X)
	sum = f32.Add(sum, f32.Mul(q.Y, q.Y))
	sum = f32.Add(sum, f32.Mul(q.Z, q.Z))
	sum = f32.Add(sum, f32.Mul(q.W, q.W))
	return sum
}

// Length returns the magnitude of q.
func (q Quaternion) Length() f32.F32 {
	return f32.Sqrt(q.LengthSquared())
}

// Normalize returns q scaled to unit length (a Versor). A zero-length
// quaternion normalizes to the identity rotation.
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	if length.IsZero() {
		return IdentityQuaternion
	}
	inv := f32.Div(f32.One, length)
	return Quaternion{f32.Mul(q.X, inv), f32.Mul(q.Y, inv), f32.Mul(q.Z, inv), f32.Mul(q.W, inv)}
}

// RotateVector applies the rotation represented by the unit quaternion q
// to v, via q * (v, 0) * conjugate(q).
func (q Quaternion) RotateVector(v Vector3) Vector3 {
	p := Quaternion{v.X, v.Y, v.Z, f32.Zero}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vector3{r.X, r.Y, r.Z}
}

// ToAxisAngle recovers the rotation axis and angle (in radians)
// represented by the unit quaternion q.
func (q Quaternion) ToAxisAngle() (axis Vector3, angle f32.F32) {
	clampedW := q.W
	if f32.Greater(clampedW, f32.One) {
		clampedW = f32.One
	} else if f32.Less(clampedW, f32.MinusOne) {
		clampedW = f32.MinusOne
	}
	angle = f32.Mul(f32.Two, f32.Acos(clampedW))
	s := f32.Sqrt(f32.Sub(f32.One, f32.Mul(clampedW, clampedW)))
	if f32.Less(s, f32.CalcEpsilon) {
		return Vector3{f32.One, f32.Zero, f32.Zero}, angle
	}
	inv := f32.Div(f32.One, s)
	return Vector3{f32.Mul(q.X, inv), f32.Mul(q.Y, inv), f32.Mul(q.Z, inv)}, angle
}
