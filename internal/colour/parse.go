package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// okChromaPercentBase is the chroma that 100% maps to in oklab()/oklch().
const okChromaPercentBase = 0.4

// Parse converts a CSS colour string into OKLCH, whatever its notation.
// Supported inputs are hex literals, CSS named colours and the rgb(), rgba(),
// hsl(), hsla(), oklab() and oklch() functions in both the comma and the
// space-separated syntax. Alpha is accepted and discarded.
func Parse(input string) (OKLCH, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return OKLCH{}, fmt.Errorf("%w: empty string", ErrUnparseable)
	}

	if IsHex(s) {
		return parseHex(s)
	}
	if rgba, ok := lookupNamed(s); ok {
		return FromColorful(colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}), nil
	}

	model, err := Notation(s)
	if err != nil {
		return OKLCH{}, err
	}
	_, args, err := splitFunction(s)
	if err != nil {
		return OKLCH{}, err
	}
	parts, err := splitArgs(args)
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: %q: %w", ErrUnparseable, input, err)
	}

	var c OKLCH
	switch model {
	case ModelRGB:
		c, err = parseRGB(parts)
	case ModelHSL:
		c, err = parseHSL(parts)
	case ModelOKLab:
		c, err = parseOKLab(parts)
	case ModelOKLCH:
		c, err = parseOKLCH(parts)
	}
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: %q: %w", ErrUnparseable, input, err)
	}
	return c, nil
}

// parseHex parses #rgb, #rgba, #rrggbb and #rrggbbaa; alpha is dropped.
func parseHex(s string) (OKLCH, error) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 8:
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return OKLCH{}, fmt.Errorf("%w: %q: %w", ErrUnparseable, s, err)
	}
	return FromColorful(c), nil
}

// splitArgs returns the three colour components of a function argument list,
// accepting "a, b, c", "a, b, c, alpha", "a b c" and "a b c / alpha". The
// alpha must be a valid number or percentage and is then dropped.
func splitArgs(args string) ([]string, error) {
	main, alpha, slashed := strings.Cut(args, "/")
	if slashed {
		if strings.Contains(alpha, "/") {
			return nil, fmt.Errorf("more than one '/'")
		}
		alpha = strings.TrimSpace(alpha)
		if alpha == "" {
			return nil, fmt.Errorf("missing alpha after '/'")
		}
	}

	parts := strings.Fields(strings.ReplaceAll(main, ",", " "))
	if len(parts) == 4 && !slashed {
		// Legacy rgba(r, g, b, a).
		alpha = parts[3]
		parts = parts[:3]
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected 3 components, got %d", len(parts))
	}

	if alpha != "" {
		if _, _, err := parseNumber(alpha); err != nil {
			return nil, fmt.Errorf("invalid alpha: %w", err)
		}
	}
	return parts, nil
}

// parseNumber parses a number or percentage. The keyword "none" is zero.
func parseNumber(tok string) (float64, bool, error) {
	if tok == "none" {
		return 0, false, nil
	}
	pct := strings.HasSuffix(tok, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("invalid number %q", tok)
	}
	return v, pct, nil
}

// parseHue parses an angle in degrees, with optional deg, grad, rad or turn units.
func parseHue(tok string) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 0.9},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}

	scale := 1.0
	for _, u := range units {
		if strings.HasSuffix(tok, u.suffix) {
			tok = strings.TrimSuffix(tok, u.suffix)
			scale = u.scale
			break
		}
	}

	v, pct, err := parseNumber(tok)
	if err != nil {
		return 0, err
	}
	if pct {
		return 0, fmt.Errorf("hue cannot be a percentage")
	}
	return v * scale, nil
}

// parseLightness reads an OK lightness: 0-1, a percentage, or a bare number above 1 taken as a percentage.
func parseLightness(tok string) (float64, error) {
	v, pct, err := parseNumber(tok)
	if err != nil {
		return 0, err
	}
	if pct || v > 1 {
		v /= 100
	}
	return clamp(v, 0, 1), nil
}

func parseRGB(parts []string) (OKLCH, error) {
	var channels [3]float64
	for i, tok := range parts {
		v, pct, err := parseNumber(tok)
		if err != nil {
			return OKLCH{}, err
		}
		if pct {
			channels[i] = clamp(v/100, 0, 1)
		} else {
			channels[i] = clamp(v/255, 0, 1)
		}
	}
	return FromColorful(colorful.Color{R: channels[0], G: channels[1], B: channels[2]}), nil
}

func parseHSL(parts []string) (OKLCH, error) {
	h, err := parseHue(parts[0])
	if err != nil {
		return OKLCH{}, err
	}
	s, _, err := parseNumber(parts[1])
	if err != nil {
		return OKLCH{}, err
	}
	l, _, err := parseNumber(parts[2])
	if err != nil {
		return OKLCH{}, err
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return FromColorful(colorful.Hsl(h, clamp(s/100, 0, 1), clamp(l/100, 0, 1))), nil
}

func parseOKLab(parts []string) (OKLCH, error) {
	l, err := parseLightness(parts[0])
	if err != nil {
		return OKLCH{}, err
	}

	var ab [2]float64
	for i, tok := range parts[1:] {
		v, pct, err := parseNumber(tok)
		if err != nil {
			return OKLCH{}, err
		}
		if pct {
			v = v / 100 * okChromaPercentBase
		}
		ab[i] = v
	}
	return fromLab(l, ab[0], ab[1]), nil
}

func parseOKLCH(parts []string) (OKLCH, error) {
	l, err := parseLightness(parts[0])
	if err != nil {
		return OKLCH{}, err
	}
	c, pct, err := parseNumber(parts[1])
	if err != nil {
		return OKLCH{}, err
	}
	if pct {
		c = c / 100 * okChromaPercentBase
	}
	h, err := parseHue(parts[2])
	if err != nil {
		return OKLCH{}, err
	}
	return normalise(OKLCH{L: l, C: math.Max(0, c), H: h}), nil
}
