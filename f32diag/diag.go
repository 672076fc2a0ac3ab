// Package f32diag provides locale-aware diagnostic rendering of F32
// values, for operator consoles and replay inspection tools. This is a
// read-only, display-only use of the host locale machinery: nothing here
// ever feeds back into an f32 arithmetic path.
package f32diag

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/detsim/f32"
)

// Format renders f as a localized decimal string with the given number of
// digits after the decimal point, using tag's locale conventions (decimal
// separator, digit grouping). NaN and the infinities are rendered with
// their f32.F32.String() spelling regardless of locale.
func Format(f f32.F32, tag language.Tag, scale int) string {
	if f.IsNaN() || f.IsInfinity() {
		return f.String()
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(float64(f32.ToFloatBits(f)), number.Scale(scale)))
}

// FormatDefault renders f with the default locale and three digits after
// the decimal point.
func FormatDefault(f f32.F32) string {
	return Format(f, language.Tag{}, 3)
}

// Vector3Labels names the components of a formatted vector, for callers
// that want FormatVector3 to annotate each value.
type Vector3Labels struct {
	X, Y, Z string
}

// DefaultVector3Labels are the conventional x/y/z axis labels.
var DefaultVector3Labels = Vector3Labels{X: "x", Y: "y", Z: "z"}

// FormatVector3 renders three related F32 values (e.g. a position or
// velocity vector) as a single labeled, localized diagnostic line.
func FormatVector3(x, y, z f32.F32, tag language.Tag, scale int, labels Vector3Labels) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%s=%s %s=%s %s=%s",
		labels.X, Format(x, tag, scale),
		labels.Y, Format(y, tag, scale),
		labels.Z, Format(z, tag, scale),
	)
}
