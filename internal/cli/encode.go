package cli

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/jmylchreest/swatch/pkg/swatch"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templates embed.FS

// encodeOptions carries the per-run settings an encoder may use.
type encodeOptions struct {
	Name    string
	Preview bool
}

// encoder writes a palette in one output encoding.
type encoder func(w io.Writer, p *swatch.Palette, opts encodeOptions) error

var encoders = map[string]encoder{
	"text":     encodeText,
	"json":     encodeJSON,
	"yaml":     encodeYAML,
	"toml":     encodeTOML,
	"css":      templateEncoder("css.tmpl"),
	"tailwind": templateEncoder("tailwind.config.js.tmpl"),
}

// encoderNames returns the supported encodings, sorted.
func encoderNames() []string {
	names := lo.Keys(encoders)
	slices.Sort(names)
	return names
}

// lookupEncoder returns the encoder for name.
func lookupEncoder(name string) (encoder, error) {
	enc, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unsupported output: %s (supported: %v)", name, encoderNames())
	}
	return enc, nil
}

// encodeJSON writes {"<tone>": "<value>"} with tones in ascending order.
func encodeJSON(w io.Writer, p *swatch.Palette, _ encodeOptions) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, sh := range p.Shades {
		value, err := json.Marshal(sh.Value)
		if err != nil {
			return fmt.Errorf("failed to encode tone %d: %w", sh.Tone, err)
		}
		fmt.Fprintf(&buf, "  %q: %s", strconv.Itoa(sh.Tone), value)
		if i < len(p.Shades)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// encodeYAML writes a tone mapping, preserving tone order.
func encodeYAML(w io.Writer, p *swatch.Palette, _ encodeOptions) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, sh := range p.Shades {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(sh.Tone)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: sh.Value},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// encodeTOML writes a table named after the palette.
func encodeTOML(w io.Writer, p *swatch.Palette, opts encodeOptions) error {
	tones := lo.SliceToMap(p.Shades, func(sh swatch.Shade) (string, string) {
		return strconv.Itoa(sh.Tone), sh.Value
	})

	data, err := toml.Marshal(map[string]map[string]string{opts.Name: tones})
	if err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// templateData is passed to the css and tailwind templates.
type templateData struct {
	Name   string
	Input  string
	Shades []swatch.Shade
}

// templateEncoder renders an embedded template.
func templateEncoder(name string) encoder {
	return func(w io.Writer, p *swatch.Palette, opts encodeOptions) error {
		content, err := templates.ReadFile("templates/" + name)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", name, err)
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		var buf bytes.Buffer
		// Inputs are single-line comments in the generated files.
		input := strings.Join(strings.Fields(p.Input), " ")
		data := templateData{Name: opts.Name, Input: input, Shades: p.Shades}
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to execute template %s: %w", name, err)
		}

		_, err = w.Write(buf.Bytes())
		return err
	}
}
