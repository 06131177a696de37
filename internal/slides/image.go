// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"golang.org/x/image/draw"
)

// resizeRGBA force-fits img to width x height. The scale is not
// aspect-preserving: the slide viewer expects every image at the exact
// target resolution, and distortion is accepted rather than corrected.
// CatmullRom keeps text edges clean when down-sampling from render DPI.
func resizeRGBA(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// writeJPEG encodes img to path at the given quality. JPEG carries no
// alpha channel, so whatever color model the renderer produced ends up as
// plain 3-channel color on disk.
func writeJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
