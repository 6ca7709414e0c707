package swatch

import (
	"math"

	"github.com/jmylchreest/swatch/internal/colour"
)

const (
	// referenceLightness normalises the working colour before shading.
	referenceLightness = 0.7

	// deepLightnessFactor darkens the working colour of the deep variant.
	deepLightnessFactor = 0.7

	// maxChroma is the practical chroma ceiling for generated shades.
	maxChroma = 0.4
)

// variantChroma holds the chroma multiplier of each variant.
var variantChroma = map[Variant]float64{
	VariantBase:    1.0,
	VariantDeep:    0.8,
	VariantNeutral: 0.5,
	VariantPastel:  0.3,
	VariantSubtle:  0.2,
	VariantVibrant: 1.25,
}

// workingColour applies the variant to the parsed base colour.
// Chroma is scaled before the deep lightness adjustment; the order matters.
func workingColour(base colour.OKLCH, v Variant) colour.OKLCH {
	c := base
	c.L = referenceLightness
	c.C *= variantChroma[v]
	if v == VariantDeep {
		c.L *= deepLightnessFactor
	}
	return c
}

// shade returns c at the target lightness with chroma corrected for how much
// colourfulness that lightness can carry. Achromatic colours stay achromatic.
func shade(c colour.OKLCH, lightness float64) colour.OKLCH {
	scale := 1.0
	if c.C != 0 {
		scale = 4 * lightness * (1 - lightness)
	}
	return colour.OKLCH{
		L: lightness,
		C: math.Max(0, math.Min(maxChroma, c.C*scale)),
		H: c.H,
	}
}
