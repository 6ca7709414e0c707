package config

import (
	"github.com/invopop/jsonschema"
)

// File documents the keys accepted in swatch.{yaml,toml,json}.
type File struct {
	Format          string  `json:"format,omitempty" jsonschema:"enum=hex,enum=rgb,enum=hsl,enum=oklab,enum=oklch,description=Output colour notation. Inferred from the input colour when empty."`
	LightnessFactor float64 `json:"lightness_factor,omitempty" jsonschema:"exclusiveMinimum=0,default=1.5,description=Exponent of the dynamic lightness curve."`
	MaxLightness    float64 `json:"max_lightness,omitempty" jsonschema:"minimum=0,maximum=1,default=0.97,description=Lightness of the lightest dynamic tone."`
	MinLightness    float64 `json:"min_lightness,omitempty" jsonschema:"minimum=0,maximum=1,default=0.2,description=Lightness of the darkest dynamic tone."`
	Scale           string  `json:"scale,omitempty" jsonschema:"enum=dynamic,enum=fixed,default=dynamic,description=Tone table strategy. fixed ignores the lightness settings."`
	Steps           int     `json:"steps,omitempty" jsonschema:"enum=11,enum=21,default=11,description=Number of tones."`
	Variant         string  `json:"variant,omitempty" jsonschema:"enum=base,enum=deep,enum=neutral,enum=pastel,enum=subtle,enum=vibrant,default=base,description=Chroma variant."`
	Output          string  `json:"output,omitempty" jsonschema:"enum=text,enum=json,enum=yaml,enum=toml,enum=css,enum=tailwind,default=text,description=Encoding written by swatch generate."`
	Name            string  `json:"name,omitempty" jsonschema:"default=primary,description=Palette name used by the css and tailwind encodings."`
}

// Schema returns the JSON Schema of the config file.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.DoNotReference = true
	return reflector.Reflect(&File{})
}
