// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render selects and exposes PDF rasterization backends.
package render

import (
	"fmt"
	"image"

	"github.com/pdiddy/slidegen/internal/poppler"
	"github.com/pdiddy/slidegen/pkg/types"
)

// Renderer rasterizes single pages of a PDF document. Implementations must
// be page-scoped: a RenderPage call loads only the requested page's raster
// data, never the whole document, so callers can hold peak memory to one
// page regardless of document length.
type Renderer interface {
	// PageCount returns the document's total number of pages.
	PageCount(pdfPath string) (int, error)

	// RenderPage renders the 1-based page at the given DPI.
	RenderPage(pdfPath string, page int, dpi float64) (image.Image, error)
}

// New returns the Renderer for the configured backend. BackendAuto prefers
// poppler when its binaries are on PATH and falls back to the in-process
// MuPDF backend otherwise.
func New(backend types.RenderBackend) (Renderer, error) {
	return newRenderer(backend, poppler.Available())
}

func newRenderer(backend types.RenderBackend, popplerOK bool) (Renderer, error) {
	switch backend {
	case types.BackendPoppler:
		if !popplerOK {
			return nil, fmt.Errorf("poppler backend requested but pdfinfo/pdftoppm are not on PATH")
		}
		return poppler.New(), nil
	case types.BackendMuPDF:
		return &MuPDF{}, nil
	case types.BackendAuto, "":
		if popplerOK {
			return poppler.New(), nil
		}
		return &MuPDF{}, nil
	default:
		return nil, fmt.Errorf("unknown render backend %q", backend)
	}
}
