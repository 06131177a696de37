// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package poppler drives the poppler-utils binaries: pdfinfo for the page
// count probe and pdftoppm for page-scoped rasterization.
package poppler

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
	"strings"
)

const (
	binPdfinfo  = "pdfinfo"
	binPdftoppm = "pdftoppm"
)

// ErrPageCountUnavailable indicates pdfinfo failed or produced no parsable
// Pages line. The document is unusable; callers abort before touching any
// output.
var ErrPageCountUnavailable = errors.New("page count unavailable")

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %v: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

var defaultExec executor = osExecutor{}

// Tool renders PDFs with poppler-utils. The zero value is not usable;
// construct with New.
type Tool struct {
	exec executor
}

// New returns a Tool backed by the real binaries.
func New() *Tool {
	return &Tool{exec: defaultExec}
}

// Available reports whether both poppler binaries are on PATH.
func Available() bool {
	return available(defaultExec)
}

func available(e executor) bool {
	if _, err := e.LookPath(binPdfinfo); err != nil {
		return false
	}
	if _, err := e.LookPath(binPdftoppm); err != nil {
		return false
	}
	return true
}

// PageCount probes pdfPath with pdfinfo and parses the "Pages:" line of
// its output. A degenerate document may report zero pages.
func (t *Tool) PageCount(pdfPath string) (int, error) {
	out, err := t.exec.Output(binPdfinfo, pdfPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPageCountUnavailable, err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		rest, ok := strings.CutPrefix(line, "Pages:")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: unparsable line %q from pdfinfo for %s",
				ErrPageCountUnavailable, strings.TrimSpace(line), pdfPath)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: no Pages line in pdfinfo output for %s",
		ErrPageCountUnavailable, pdfPath)
}

// RenderPage rasterizes exactly one page (1-based) of pdfPath at the given
// DPI. pdftoppm is invoked with a single-page range and writes PNG to
// stdout, so only that page's raster data is ever decoded.
func (t *Tool) RenderPage(pdfPath string, page int, dpi float64) (image.Image, error) {
	args := []string{
		"-png",
		"-r", strconv.FormatFloat(dpi, 'f', -1, 64),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-singlefile",
		pdfPath,
	}
	out, err := t.exec.Output(binPdftoppm, args...)
	if err != nil {
		return nil, fmt.Errorf("rendering page %d of %s: %w", page, pdfPath, err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("decoding page %d of %s: %w", page, pdfPath, err)
	}
	return img, nil
}
