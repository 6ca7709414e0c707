package cli

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/pkg/swatch"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// generateFlags maps config keys to generate command flags.
var generateFlags = map[string]string{
	config.KeyFormat:          "format",
	config.KeyLightnessFactor: "lightness-factor",
	config.KeyMaxLightness:    "max-lightness",
	config.KeyMinLightness:    "min-lightness",
	config.KeyScale:           "scale",
	config.KeySteps:           "steps",
	config.KeyVariant:         "variant",
	config.KeyOutput:          "output",
	config.KeyName:            "name",
}

// newGenerateCmd builds the generate command.
func newGenerateCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <colour>",
		Short: "Generate a shade ramp from a colour",
		Long: `Generate a swatch of tonal variants from a single colour.

The colour may be a hex literal (#3b82f6), a CSS named colour (tomato) or an
rgb(), hsl(), oklab() or oklch() function. Values are written in the input's
own notation unless --format is given; hex and named inputs produce hex.

Examples:
  # Eleven tones (50-950) as a table
  swatch generate "#3b82f6"

  # Twenty-one fixed tones in OKLCH
  swatch generate --scale fixed --steps 21 "oklch(0.6 0.15 250)"

  # A pastel ramp as CSS custom properties
  swatch generate --variant pastel -o css --name brand tomato

  # A tailwind.config.js colour block
  swatch generate -o tailwind --file tailwind.config.js "#10b981"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, fs)
		},
	}

	defaults := swatch.DefaultOptions()
	flags := cmd.Flags()
	flags.StringP("format", "f", "", fmt.Sprintf("colour notation of the values %v (default: inferred from the input)", swatch.Formats()))
	flags.Float64("lightness-factor", defaults.LightnessFactor, "exponent of the dynamic lightness curve")
	flags.Float64("max-lightness", defaults.MaxLightness, "lightness of the lightest dynamic tone (0-1)")
	flags.Float64("min-lightness", defaults.MinLightness, "lightness of the darkest dynamic tone (0-1)")
	flags.String("scale", string(defaults.Scale), fmt.Sprintf("tone table strategy %v", swatch.Scales()))
	flags.Int("steps", defaults.Steps, "number of tones (11 or 21)")
	flags.String("variant", string(defaults.Variant), fmt.Sprintf("chroma variant %v", swatch.Variants()))
	flags.StringP("output", "o", config.DefaultOutput, fmt.Sprintf("output encoding %v", encoderNames()))
	flags.String("name", config.DefaultName, "palette name used by the css and tailwind encodings")
	flags.String("file", "", "write output to a file (default: stdout)")
	flags.Bool("preview", false, "show colour previews in text output (default: on when stdout is a terminal)")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string, fs afero.Fs) error {
	logger := newLogger(cmd)

	loader := config.New(fs)
	if err := loader.BindFlags(cmd.Flags(), generateFlags); err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loader.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}

	if !validName.MatchString(cfg.Name) {
		return fmt.Errorf("invalid name: %q (use letters, digits, '-' and '_')", cfg.Name)
	}

	enc, err := lookupEncoder(cfg.Output)
	if err != nil {
		return err
	}

	generator := swatch.New(swatch.WithLogger(logger))
	palette, err := generator.Palette(args[0], cfg.Options)
	if err != nil {
		return fmt.Errorf("failed to generate swatch: %w", err)
	}
	logger.Debug("generated swatch", "tones", len(palette.Shades), "format", palette.Format)

	outFile, _ := cmd.Flags().GetString("file")
	preview, _ := cmd.Flags().GetBool("preview")
	if !cmd.Flags().Changed("preview") {
		preview = outFile == "" && isTerminal(cmd)
	}

	var buf bytes.Buffer
	if err := enc(&buf, palette, encodeOptions{Name: cfg.Name, Preview: preview}); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if outFile != "" {
		logger.Debug("writing output", "file", outFile)
		if err := afero.WriteFile(fs, outFile, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
