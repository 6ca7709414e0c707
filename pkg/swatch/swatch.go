// Package swatch generates perceptually tuned shade ramps from a single colour.
//
// A swatch maps tone labels (50, 100, ... 950 or 0, 50, ... 1000) to colour
// strings. Lightness follows either a power curve or a fixed lookup table;
// chroma is reduced towards the light and dark ends so every tone stays
// plausible in OKLCH.
package swatch

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/colour"
)

// Color is a colour in OKLCH (lightness, chroma, hue).
type Color = colour.OKLCH

// Parser converts a colour string into OKLCH.
type Parser interface {
	Parse(input string) (Color, error)
}

// Formatter serialises an OKLCH colour into a representation.
type Formatter interface {
	Format(c Color, f Format) (string, error)
}

// Classifier identifies the notation of a colour string.
type Classifier interface {
	IsHex(input string) bool
	IsNamed(input string) bool
	Notation(input string) (Format, error)
}

// cssColours is the default collaborator set backed by internal/colour.
type cssColours struct{}

func (cssColours) Parse(input string) (Color, error) { return colour.Parse(input) }

func (cssColours) Format(c Color, f Format) (string, error) {
	return colour.Format(c, colour.Model(f))
}

func (cssColours) IsHex(input string) bool   { return colour.IsHex(input) }
func (cssColours) IsNamed(input string) bool { return colour.IsNamed(input) }

func (cssColours) Notation(input string) (Format, error) {
	m, err := colour.Notation(input)
	return Format(m), err
}

// Swatch maps tone labels to formatted colours.
type Swatch map[int]string

// Tones returns the tone labels in ascending order.
func (s Swatch) Tones() []int {
	return slices.Sorted(maps.Keys(s))
}

// Shade is one generated tone.
type Shade struct {
	Tone      int     `json:"tone"`
	Lightness float64 `json:"lightness"`
	Color     Color   `json:"color"`
	Value     string  `json:"value"`
}

// Palette is a generated swatch together with its intermediate values.
type Palette struct {
	Input   string  `json:"input"`
	Base    Color   `json:"base"`
	Working Color   `json:"working"`
	Format  Format  `json:"format"`
	Options Options `json:"options"`
	Shades  []Shade `json:"shades"`
}

// Swatch returns the tone to value mapping of the palette.
func (p *Palette) Swatch() Swatch {
	s := make(Swatch, len(p.Shades))
	for _, sh := range p.Shades {
		s[sh.Tone] = sh.Value
	}
	return s
}

// Generator produces swatches. It holds no per-call state and is safe for
// concurrent use.
type Generator struct {
	parser     Parser
	formatter  Formatter
	classifier Classifier
	logger     hclog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithParser replaces the colour parser.
func WithParser(p Parser) GeneratorOption {
	return func(g *Generator) { g.parser = p }
}

// WithFormatter replaces the colour formatter.
func WithFormatter(f Formatter) GeneratorOption {
	return func(g *Generator) { g.formatter = f }
}

// WithClassifier replaces the notation classifier.
func WithClassifier(c Classifier) GeneratorOption {
	return func(g *Generator) { g.classifier = c }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l hclog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator using the CSS colour collaborators by default.
func New(opts ...GeneratorOption) *Generator {
	g := &Generator{
		parser:     cssColours{},
		formatter:  cssColours{},
		classifier: cssColours{},
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate builds a swatch from input with DefaultOptions modified by opts.
func Generate(input string, opts ...Option) (Swatch, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return defaultGenerator.Generate(input, o)
}

// Generate builds a swatch from input.
func (g *Generator) Generate(input string, o Options) (Swatch, error) {
	p, err := g.Palette(input, o)
	if err != nil {
		return nil, err
	}
	return p.Swatch(), nil
}

// Palette builds a swatch from input and returns every intermediate shade.
func (g *Generator) Palette(input string, o Options) (*Palette, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("%w: colour must be a non-empty string", ErrInvalidInput)
	}

	o = o.withDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}

	base, err := g.parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseableColor, err)
	}

	format, err := g.resolveFormat(input, o.Format)
	if err != nil {
		return nil, err
	}

	working := workingColour(base, o.Variant)
	g.logger.Debug("generating swatch",
		"input", input,
		"format", format,
		"scale", o.Scale,
		"steps", o.Steps,
		"variant", o.Variant,
		"base", base,
		"working", working,
	)

	tones := BuildToneTable(o)
	p := &Palette{
		Input:   input,
		Base:    base,
		Working: working,
		Format:  format,
		Options: o,
		Shades:  make([]Shade, 0, len(tones)),
	}

	for _, tone := range tones {
		c := shade(working, tone.Lightness)
		value, err := g.formatter.Format(c, format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		g.logger.Trace("shade", "tone", tone.Label, "l", c.L, "c", c.C, "h", c.H, "value", value)

		p.Shades = append(p.Shades, Shade{
			Tone:      tone.Label,
			Lightness: tone.Lightness,
			Color:     c,
			Value:     value,
		})
	}

	return p, nil
}

// resolveFormat returns the explicit format, or infers one from the input.
func (g *Generator) resolveFormat(input string, explicit Format) (Format, error) {
	if explicit != "" {
		return explicit, nil
	}
	if g.classifier.IsHex(input) || g.classifier.IsNamed(input) {
		return FormatHex, nil
	}
	f, err := g.classifier.Notation(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnparseableColor, err)
	}
	return f, nil
}
