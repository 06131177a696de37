// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// MuPDF renders pages in-process through go-fitz. It needs no external
// binaries, which makes it the fallback when poppler-utils is absent.
type MuPDF struct{}

// PageCount opens the document and returns its page count.
func (m *MuPDF) PageCount(pdfPath string) (int, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// RenderPage opens the document fresh for every page. Closing it before
// returning releases everything except the returned raster, which keeps
// the per-page memory bound intact.
func (m *MuPDF) RenderPage(pdfPath string, page int, dpi float64) (image.Image, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer doc.Close()

	// go-fitz pages are 0-based.
	img, err := doc.ImageDPI(page-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d of %s: %w", page, pdfPath, err)
	}
	return img, nil
}
