// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides implements the PDF-to-slide conversion pipeline: probe
// the page count, reset the output directory, render and encode one page
// at a time, then write the metadata descriptor.
package slides

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pdiddy/slidegen/internal/render"
	"github.com/pdiddy/slidegen/pkg/types"
)

// Result summarizes a completed conversion run.
type Result struct {
	TotalPages int
	OutputDir  string
	MetaPath   string
}

// Convert runs the full pipeline for the PDF at pdfPath, writing progress
// lines to w. Any failure aborts the run; slides written before the
// failure stay on disk, but the metadata file is only ever written after
// every page succeeded.
//
// Pages are processed strictly in order, one at a time. Each iteration's
// rasters are local to renderSlide, so peak raster memory stays at one
// page no matter how long the document is.
func Convert(r render.Renderer, pdfPath string, cfg types.Config, w io.Writer) (*Result, error) {
	source := filepath.Base(pdfPath)

	total, err := r.PageCount(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("probing %s: %w", source, err)
	}
	fmt.Fprintf(w, "[1/4] source: %s (%d pages)\n", source, total)

	fmt.Fprintf(w, "[2/4] resetting %s/\n", cfg.OutputDir)
	if err := resetDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "[3/4] converting (%dx%d, JPEG %d%%, %g DPI)\n",
		cfg.Width, cfg.Height, cfg.Quality, cfg.DPI)
	width := padWidth(total)
	for page := 1; page <= total; page++ {
		name := slideName(page, width)
		path := filepath.Join(cfg.OutputDir, name)
		if err := renderSlide(r, pdfPath, page, path, cfg); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "      [%d/%d] %s (%d KB)\n", page, total, name, fileSizeKB(path))
	}

	fmt.Fprintf(w, "[4/4] writing %s\n", cfg.MetaPath)
	meta := types.Metadata{
		TotalPages:  total,
		Version:     types.MetadataVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		SourcePDF:   source,
	}
	if err := writeMetadata(cfg.MetaPath, meta); err != nil {
		return nil, err
	}

	return &Result{TotalPages: total, OutputDir: cfg.OutputDir, MetaPath: cfg.MetaPath}, nil
}

// renderSlide renders one page and writes it as a JPEG. Both rasters (the
// rendered page and the resized copy) are unreachable once this function
// returns; that is what bounds the converter's memory on long documents.
func renderSlide(r render.Renderer, pdfPath string, page int, path string, cfg types.Config) error {
	img, err := r.RenderPage(pdfPath, page, cfg.DPI)
	if err != nil {
		return fmt.Errorf("rendering page %d: %w", page, err)
	}
	resized := resizeRGBA(img, cfg.Width, cfg.Height)
	return writeJPEG(path, resized, cfg.Quality)
}

// resetDir destructively empties dir: prior contents are removed and the
// directory recreated. There is no rollback; a failure part-way through
// aborts the run.
func resetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clearing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// padWidth returns the zero-padding width for slide numbers: three digits
// up to 999 pages, widening beyond that so names stay unique and keep
// sorting lexicographically.
func padWidth(totalPages int) int {
	if w := len(strconv.Itoa(totalPages)); w > 3 {
		return w
	}
	return 3
}

func slideName(page, width int) string {
	return fmt.Sprintf("slide_%0*d.jpg", width, page)
}

// fileSizeKB reports the written artifact's size for progress output only.
func fileSizeKB(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size() / 1024
}
