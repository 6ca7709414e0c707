// Package colour provides the colour-space plumbing behind swatch generation:
// parsing CSS colour strings into OKLCH, classifying their notation and
// formatting OKLCH values back into CSS notations.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLCH is a colour in the OKLCH cylindrical space.
// L is lightness [0, 1], C is chroma (>= 0, practically <= 0.4),
// H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// FromColorful converts a go-colorful colour (sRGB) to OKLCH. Colours with
// equal channels are greys and get a chroma and hue of exactly zero.
func FromColorful(c colorful.Color) OKLCH {
	l, ch, h := c.OkLch()
	if isGrey(c) {
		return OKLCH{L: clamp(l, 0, 1)}
	}
	return normalise(OKLCH{L: l, C: ch, H: h})
}

// Colorful converts the colour to sRGB. The result may be outside the sRGB
// gamut; call Clamped on it before converting to 8-bit values. Achromatic
// colours map onto the neutral axis directly, so every channel is equal.
func (c OKLCH) Colorful() colorful.Color {
	if c.C == 0 {
		y := c.L * c.L * c.L
		return colorful.LinearRgb(y, y, y)
	}
	return colorful.OkLch(c.L, c.C, c.H)
}

// isGrey reports whether the sRGB channels of c are equal.
func isGrey(c colorful.Color) bool {
	const tolerance = 1e-9
	return math.Abs(c.R-c.G) < tolerance && math.Abs(c.G-c.B) < tolerance
}

// Lab returns the OKLab a and b components of the colour.
func (c OKLCH) Lab() (l, a, b float64) {
	rad := c.H * math.Pi / 180
	return c.L, c.C * math.Cos(rad), c.C * math.Sin(rad)
}

// fromLab converts OKLab components to OKLCH.
func fromLab(l, a, b float64) OKLCH {
	h := math.Atan2(b, a) * 180 / math.Pi
	return normalise(OKLCH{L: l, C: math.Sqrt(a*a + b*b), H: h})
}

// normalise wraps the hue into [0, 360) and trims numerical noise from
// achromatic colours so greys report a chroma of exactly zero.
func normalise(c OKLCH) OKLCH {
	const epsilon = 1e-5

	if c.C < epsilon {
		c.C = 0
		c.H = 0
	}
	c.H = math.Mod(c.H, 360)
	if c.H < 0 {
		c.H += 360
	}
	c.L = clamp(c.L, 0, 1)
	return c
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
