package colour

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Format serialises c in the given model. sRGB based models (hex, rgb, hsl)
// clamp the colour into the sRGB gamut first; oklab and oklch are emitted
// as-is.
func Format(c OKLCH, model Model) (string, error) {
	switch model {
	case ModelHex:
		return c.Colorful().Clamped().Hex(), nil
	case ModelRGB:
		r, g, b := c.Colorful().Clamped().RGB255()
		return fmt.Sprintf("rgb(%d %d %d)", r, g, b), nil
	case ModelHSL:
		h, s, l := hsl(c)
		return fmt.Sprintf("hsl(%s %s%% %s%%)", round(h, 2), round(s*100, 2), round(l*100, 2)), nil
	case ModelOKLab:
		l, a, b := c.Lab()
		return fmt.Sprintf("oklab(%s %s %s)", round(l, 5), round(a, 5), round(b, 5)), nil
	case ModelOKLCH:
		return fmt.Sprintf("oklch(%s %s %s)", round(c.L, 5), round(c.C, 5), round(c.H, 5)), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedModel, model, Models())
	}
}

// hsl converts c to HSL through the 8-bit sRGB values that hex and rgb
// print, so the three notations agree and conversion noise is dropped.
func hsl(c OKLCH) (h, s, l float64) {
	r, g, b := c.Colorful().Clamped().RGB255()
	if r == g && g == b {
		return 0, 0, float64(r) / 255
	}

	h, s, l = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
	h = math.Mod(math.Round(h*100)/100, 360)
	return h, s, l
}

// round formats v with at most places decimals and no trailing zeros.
func round(v float64, places int) string {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		// Avoid "-0".
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
