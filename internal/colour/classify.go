package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Model is a colour notation family.
type Model string

const (
	// ModelHex is the "#rrggbb" notation.
	ModelHex Model = "hex"

	// ModelRGB is the rgb()/rgba() function notation.
	ModelRGB Model = "rgb"

	// ModelHSL is the hsl()/hsla() function notation.
	ModelHSL Model = "hsl"

	// ModelOKLab is the oklab() function notation.
	ModelOKLab Model = "oklab"

	// ModelOKLCH is the oklch() function notation.
	ModelOKLCH Model = "oklch"
)

var (
	// ErrUnparseable is returned when a string is not a recognised colour.
	ErrUnparseable = errors.New("unrecognised colour")

	// ErrUnsupportedModel is returned when formatting to an unknown model.
	ErrUnsupportedModel = errors.New("unsupported colour model")
)

// Models returns the supported models in a stable order.
func Models() []Model {
	return []Model{ModelHex, ModelRGB, ModelHSL, ModelOKLab, ModelOKLCH}
}

// IsValidModel reports whether m is a supported model.
func IsValidModel(m Model) bool {
	for _, valid := range Models() {
		if m == valid {
			return true
		}
	}
	return false
}

// IsHex reports whether input is a hex colour literal (#rgb, #rgba,
// #rrggbb or #rrggbbaa).
func IsHex(input string) bool {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

// cssLevel4Names are the CSS Color 4 keywords missing from the SVG 1.1 table
// in colornames.
var cssLevel4Names = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// lookupNamed returns the sRGB value of a CSS named colour.
func lookupNamed(input string) (color.RGBA, bool) {
	name := strings.ToLower(strings.TrimSpace(input))
	if c, ok := colornames.Map[name]; ok {
		return c, true
	}
	c, ok := cssLevel4Names[name]
	return c, ok
}

// IsNamed reports whether input is a CSS named colour such as "rebeccapurple".
func IsNamed(input string) bool {
	_, ok := lookupNamed(input)
	return ok
}

// Notation returns the notation family of input. Hex literals and named
// colours both report ModelHex.
func Notation(input string) (Model, error) {
	if IsHex(input) || IsNamed(input) {
		return ModelHex, nil
	}

	name, _, err := splitFunction(input)
	if err != nil {
		return "", err
	}

	switch name {
	case "rgb", "rgba":
		return ModelRGB, nil
	case "hsl", "hsla":
		return ModelHSL, nil
	case "oklab":
		return ModelOKLab, nil
	case "oklch":
		return ModelOKLCH, nil
	default:
		return "", fmt.Errorf("%w: unknown colour function %q", ErrUnparseable, name)
	}
}

// splitFunction splits "name(args)" into its lower-cased name and argument list.
func splitFunction(input string) (string, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", fmt.Errorf("%w: %q", ErrUnparseable, input)
	}
	return strings.TrimSpace(s[:open]), s[open+1 : len(s)-1], nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
