package f32

// Equal reports raw-bit equality with the IEEE-mandated exception that +0
// and -0 compare equal; NaN never equals anything, including itself.
func Equal(a, b F32) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsZero() && b.IsZero() {
		return true
	}
	return uint32(a) == uint32(b)
}

// totalOrderKey maps a non-NaN F32's raw bits onto a signed integer whose
// ordinary integer ordering agrees with the float's numeric ordering
// (including across the two infinities and positive/negative zero, which
// land adjacent to each other but are not required to be identical here —
// Equal and Less special-case zero separately).
func totalOrderKey(f F32) int64 {
	raw := uint32(f)
	if raw&signMask == 0 {
		return int64(raw) + (1 << 31)
	}
	magnitude := raw &^ signMask
	return (1<<31 - 1) - int64(magnitude)
}

// Less reports whether a < b. Any NaN operand makes this false.
func Less(a, b F32) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsZero() && b.IsZero() {
		return false
	}
	return totalOrderKey(a) < totalOrderKey(b)
}

// Greater reports whether a > b. Any NaN operand makes this false.
func Greater(a, b F32) bool {
	return Less(b, a)
}

// LessEqual reports whether a <= b. Any NaN operand makes this false.
func LessEqual(a, b F32) bool {
	return Less(a, b) || Equal(a, b)
}

// GreaterEqual reports whether a >= b. Any NaN operand makes this false.
func GreaterEqual(a, b F32) bool {
	return Greater(a, b) || Equal(a, b)
}

// CompareTo returns a total order over all F32 values, including NaN:
// both NaNs compare equal to each other here (unlike Equal, which never
// considers any NaN equal to anything — a well-known, intentional split
// between equality and total ordering).
func CompareTo(a, b F32) int {
	aNaN, bNaN := a.IsNaN(), b.IsNaN()
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	ka, kb := totalOrderKey(a), totalOrderKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// StructuralEqual is the equality relation used for hashing/dictionary
// membership: +0 equals -0, the two infinities are distinct from each
// other, and every NaN equals every other NaN regardless of payload.
func StructuralEqual(a, b F32) bool {
	if a.IsNaN() && b.IsNaN() {
		return true
	}
	if a.IsZero() && b.IsZero() {
		return true
	}
	return uint32(a) == uint32(b)
}

// Hash returns a hash code consistent with StructuralEqual: zero of
// either sign hashes to 0, every NaN hashes to the canonical NaN's raw
// word, and everything else hashes to its raw word.
func Hash(f F32) int32 {
	if f.IsZero() {
		return 0
	}
	if f.IsNaN() {
		return int32(ToRaw(NaN))
	}
	return int32(uint32(f))
}

// Min returns the smaller of a and b, returning the non-NaN operand if
// exactly one is NaN.
func Min(a, b F32) F32 {
	if a.IsNaN() {
		return b
	}
	if b.IsNaN() {
		return a
	}
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns the larger of a and b, returning the non-NaN operand if
// exactly one is NaN.
func Max(a, b F32) F32 {
	if a.IsNaN() {
		return b
	}
	if b.IsNaN() {
		return a
	}
	if Greater(b, a) {
		return b
	}
	return a
}
