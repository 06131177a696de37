// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types declares the configuration and metadata records shared
// across slidegen packages.
package types

// RenderBackend identifies the PDF rasterization backend.
type RenderBackend string

const (
	// BackendAuto picks poppler when pdfinfo and pdftoppm are on PATH,
	// otherwise the in-process MuPDF backend.
	BackendAuto RenderBackend = "auto"

	// BackendPoppler renders through the poppler-utils binaries.
	BackendPoppler RenderBackend = "poppler"

	// BackendMuPDF renders in-process through go-fitz.
	BackendMuPDF RenderBackend = "mupdf"
)

// Config holds all conversion settings. Defaults come from DefaultConfig;
// the config file, environment, and flags override them in that order.
type Config struct {
	// OutputDir is the directory slide images are written to. It is
	// deleted and recreated at the start of every run (default "Web/slides").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MetaPath is where the conversion metadata JSON is written
	// (default "Web/meta.json").
	MetaPath string `json:"meta_path" yaml:"meta_path"`

	// Width and Height are the exact output dimensions in pixels
	// (default 1920x1080). Every slide is force-fit to them; aspect
	// ratio is not preserved.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Quality is the JPEG quality, 1-100 (default 85).
	Quality int `json:"quality" yaml:"quality"`

	// DPI is the rasterization density used when rendering a page,
	// before resizing (default 150, plenty for 1920x1080 output).
	DPI float64 `json:"dpi" yaml:"dpi"`

	// Backend selects the rasterizer (default auto).
	Backend RenderBackend `json:"backend" yaml:"backend"`
}

// DefaultConfig returns the documented default settings.
func DefaultConfig() Config {
	return Config{
		OutputDir: "Web/slides",
		MetaPath:  "Web/meta.json",
		Width:     1920,
		Height:    1080,
		Quality:   85,
		DPI:       150,
		Backend:   BackendAuto,
	}
}
