package swatch

import (
	"fmt"
	"math"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Scale selects how the tone table is built.
type Scale string

const (
	// ScaleDynamic derives lightness from a power curve over the step index.
	ScaleDynamic Scale = "dynamic"

	// ScaleFixed uses a precomputed tone/lightness lookup. LightnessFactor,
	// MaxLightness and MinLightness are ignored.
	ScaleFixed Scale = "fixed"
)

// Variant adjusts the chroma of the whole swatch.
type Variant string

const (
	VariantBase    Variant = "base"
	VariantDeep    Variant = "deep"
	VariantNeutral Variant = "neutral"
	VariantPastel  Variant = "pastel"
	VariantSubtle  Variant = "subtle"
	VariantVibrant Variant = "vibrant"
)

// Format is an output colour representation.
type Format string

const (
	FormatHex   Format = Format(colour.ModelHex)
	FormatRGB   Format = Format(colour.ModelRGB)
	FormatHSL   Format = Format(colour.ModelHSL)
	FormatOKLab Format = Format(colour.ModelOKLab)
	FormatOKLCH Format = Format(colour.ModelOKLCH)
)

// Default option values.
const (
	DefaultLightnessFactor = 1.5
	DefaultMaxLightness    = 0.97
	DefaultMinLightness    = 0.2
	DefaultSteps           = 11
)

// Scales returns the valid scales.
func Scales() []Scale {
	return []Scale{ScaleDynamic, ScaleFixed}
}

// Variants returns the valid variants.
func Variants() []Variant {
	return []Variant{VariantBase, VariantDeep, VariantNeutral, VariantPastel, VariantSubtle, VariantVibrant}
}

// Formats returns the valid output formats.
func Formats() []Format {
	models := colour.Models()
	formats := make([]Format, len(models))
	for i, m := range models {
		formats[i] = Format(m)
	}
	return formats
}

// Options configures swatch generation. Start from DefaultOptions; the zero
// value is not valid.
type Options struct {
	// Format is the output representation. Empty infers it from the input:
	// hex for hex literals and named colours, the input's own notation otherwise.
	Format Format `json:"format,omitempty"`

	// LightnessFactor is the exponent of the dynamic lightness curve.
	LightnessFactor float64 `json:"lightnessFactor"`

	// MaxLightness and MinLightness bound the dynamic lightness range.
	MaxLightness float64 `json:"maxLightness"`
	MinLightness float64 `json:"minLightness"`

	Scale Scale `json:"scale"`

	// Steps is the number of tones, 11 or 21.
	Steps int `json:"swatchSteps"`

	Variant Variant `json:"variant"`
}

// DefaultOptions returns the default swatch options.
func DefaultOptions() Options {
	return Options{
		LightnessFactor: DefaultLightnessFactor,
		MaxLightness:    DefaultMaxLightness,
		MinLightness:    DefaultMinLightness,
		Scale:           ScaleDynamic,
		Steps:           DefaultSteps,
		Variant:         VariantBase,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithLightnessFactor sets the dynamic curve exponent.
func WithLightnessFactor(factor float64) Option {
	return func(o *Options) { o.LightnessFactor = factor }
}

// WithLightnessRange sets the dynamic lightness bounds.
func WithLightnessRange(minLightness, maxLightness float64) Option {
	return func(o *Options) {
		o.MinLightness = minLightness
		o.MaxLightness = maxLightness
	}
}

// WithScale sets the tone table strategy.
func WithScale(s Scale) Option {
	return func(o *Options) { o.Scale = s }
}

// WithSteps sets the number of tones.
func WithSteps(steps int) Option {
	return func(o *Options) { o.Steps = steps }
}

// WithVariant sets the chroma variant.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// withDefaults fills in empty enum fields.
func (o Options) withDefaults() Options {
	if o.Scale == "" {
		o.Scale = ScaleDynamic
	}
	if o.Variant == "" {
		o.Variant = VariantBase
	}
	return o
}

// Validate checks the options after defaulting.
func (o Options) Validate() error {
	o = o.withDefaults()

	for name, v := range map[string]float64{
		"lightnessFactor": o.LightnessFactor,
		"maxLightness":    o.MaxLightness,
		"minLightness":    o.MinLightness,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidOptions, name)
		}
	}

	if o.MinLightness < 0 || o.MinLightness > 1 {
		return fmt.Errorf("%w: minLightness must be between 0 and 1, got %g", ErrInvalidOptions, o.MinLightness)
	}
	if o.MaxLightness < 0 || o.MaxLightness > 1 {
		return fmt.Errorf("%w: maxLightness must be between 0 and 1, got %g", ErrInvalidOptions, o.MaxLightness)
	}
	if o.MaxLightness <= o.MinLightness {
		return fmt.Errorf("%w: maxLightness (%g) must be greater than minLightness (%g)",
			ErrInvalidOptions, o.MaxLightness, o.MinLightness)
	}
	if o.LightnessFactor <= 0 {
		return fmt.Errorf("%w: lightnessFactor must be greater than 0, got %g", ErrInvalidOptions, o.LightnessFactor)
	}
	if o.Steps != 11 && o.Steps != 21 {
		return fmt.Errorf("%w: swatchSteps must be 11 or 21, got %d", ErrInvalidOptions, o.Steps)
	}

	switch o.Scale {
	case ScaleDynamic, ScaleFixed:
	default:
		return fmt.Errorf("%w: unknown scale %q (valid: %v)", ErrInvalidOptions, o.Scale, Scales())
	}

	if _, ok := variantChroma[o.Variant]; !ok {
		return fmt.Errorf("%w: unknown variant %q (valid: %v)", ErrInvalidOptions, o.Variant, Variants())
	}

	if o.Format != "" && !colour.IsValidModel(colour.Model(o.Format)) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrUnsupportedFormat, o.Format, Formats())
	}

	return nil
}
