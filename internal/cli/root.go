// Package cli provides the command-line interface for swatch.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/swatch/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Option configures the command tree.
type Option func(*options)

type options struct {
	fs afero.Fs
}

// WithFs sets the filesystem used for config files and --file output.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Generate perceptual shade ramps from a single colour",
		Long: `swatch turns one colour into a palette of tonal variants (50-950 or 0-1000)
for design systems and UI themes.

Lightness is distributed in OKLCH along a tunable curve or a fixed table, and
chroma is reduced towards the light and dark ends so every tone stays usable.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./swatch.{yaml,toml,json} or the user config dir)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(o.fs))
	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the command logger from --verbose, --quiet and SWATCH_LOG_LEVEL.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	if env := hclog.LevelFromString(os.Getenv("SWATCH_LOG_LEVEL")); env != hclog.NoLevel {
		level = env
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// newVersionCmd prints version information.
func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
