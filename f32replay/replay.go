// Package f32replay compacts streams of f32.F32 values to half precision
// for transport and storage, for callers (replay logs, network snapshot
// diffs) that have already decided bandwidth matters more than the last
// bits of precision. This is a lossy, explicit boundary: nothing in the
// f32 package itself ever goes through here.
package f32replay

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/detsim/f32"
)

// CompactHalf narrows f to IEEE binary16 and returns its raw 16-bit word.
// Values outside binary16's range saturate to +-Inf; NaN is preserved as
// NaN (payload not preserved).
func CompactHalf(f f32.F32) uint16 {
	h := float16.Fromfloat32(f32.ToFloatBits(f))
	return h.Bits()
}

// ExpandHalf widens a compacted binary16 word back to an F32. The
// conversion is exact: every binary16 value is exactly representable in
// binary32.
func ExpandHalf(bits uint16) f32.F32 {
	h := float16.Frombits(bits)
	return f32.FromFloatBits(h.Float32())
}

// Stream is an append-only buffer of compacted F32 values, the unit this
// package expects a replay log or network frame to serialize.
type Stream struct {
	words []uint16
}

// NewStream returns an empty compacted stream with room for at least
// capacity values.
func NewStream(capacity int) *Stream {
	return &Stream{words: make([]uint16, 0, capacity)}
}

// Append compacts f and appends it to the stream.
func (s *Stream) Append(f f32.F32) {
	s.words = append(s.words, CompactHalf(f))
}

// Len returns the number of values currently in the stream.
func (s *Stream) Len() int {
	return len(s.words)
}

// At expands and returns the value at index i.
func (s *Stream) At(i int) (f32.F32, error) {
	if i < 0 || i >= len(s.words) {
		return f32.Zero, &IndexError{Index: i, Len: len(s.words)}
	}
	return ExpandHalf(s.words[i]), nil
}

// Raw returns the underlying compacted words, for serialization.
func (s *Stream) Raw() []uint16 {
	return s.words
}

// IndexError reports an out-of-range access into a Stream.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("f32replay: index %d out of range for stream of length %d", e.Index, e.Len)
}
