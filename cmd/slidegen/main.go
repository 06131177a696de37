// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidegen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidegen/internal/render"
	"github.com/pdiddy/slidegen/internal/slides"
	"github.com/pdiddy/slidegen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts the given PDF; version and config are subcommands.
var rootCmd = &cobra.Command{
	Use:   "slidegen <pdf>",
	Short: "Convert a PDF into fixed-resolution slide images",
	Long: `slidegen converts a single PDF document into a sequence of 1920x1080
JPEG slide images plus a meta.json descriptor for a static web slide viewer.

Pages are rendered strictly one at a time, so peak memory stays around a
single page's raster regardless of document length. That keeps large decks
convertible on small CI runners.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// arguments are validated by now; runtime failures should not
		// echo the usage text
		cmd.SilenceUsage = true

		pdfPath := args[0]
		if _, err := os.Stat(pdfPath); err != nil {
			return fmt.Errorf("source PDF not found: %s", pdfPath)
		}

		cfg := resolveConfig()
		r, err := render.New(cfg.Backend)
		if err != nil {
			return err
		}

		result, err := slides.Convert(r, pdfPath, cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\ndone: %d slides in %s/\n",
			result.TotalPages, result.OutputDir)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidegen.yaml or ~/.config/slidegen/config.yaml)")

	def := types.DefaultConfig()
	flags := rootCmd.Flags()
	flags.String("output-dir", def.OutputDir, "directory slide images are written to (reset every run)")
	flags.String("meta", def.MetaPath, "path of the metadata JSON file")
	flags.Int("width", def.Width, "output width in pixels")
	flags.Int("height", def.Height, "output height in pixels")
	flags.Int("quality", def.Quality, "JPEG quality, 1-100")
	flags.Float64("dpi", def.DPI, "rasterization density before resizing")
	flags.String("backend", string(def.Backend), "render backend: auto, poppler, or mupdf")

	viper.BindPFlag("output_dir", flags.Lookup("output-dir"))
	viper.BindPFlag("meta_path", flags.Lookup("meta"))
	viper.BindPFlag("width", flags.Lookup("width"))
	viper.BindPFlag("height", flags.Lookup("height"))
	viper.BindPFlag("quality", flags.Lookup("quality"))
	viper.BindPFlag("dpi", flags.Lookup("dpi"))
	viper.BindPFlag("backend", flags.Lookup("backend"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidegen"))
		}
	}

	viper.SetEnvPrefix("SLIDEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveConfig merges defaults, config file, environment, and flags into
// the effective configuration.
func resolveConfig() types.Config {
	return types.Config{
		OutputDir: viper.GetString("output_dir"),
		MetaPath:  viper.GetString("meta_path"),
		Width:     viper.GetInt("width"),
		Height:    viper.GetInt("height"),
		Quality:   viper.GetInt("quality"),
		DPI:       viper.GetFloat64("dpi"),
		Backend:   types.RenderBackend(viper.GetString("backend")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
