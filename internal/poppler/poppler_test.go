// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poppler

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses. The key for
// outputs and errs is "bin arg1 arg2 ...".
type mockExecutor struct {
	availableBins map[string]bool
	outputs       map[string][]byte
	errs          map[string]error
	calls         []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Output(name string, args ...string) ([]byte, error) {
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)
	if err, ok := m.errs[key]; ok {
		return nil, err
	}
	return m.outputs[key], nil
}

// pdfinfoOutput is a realistic pdfinfo dump for a 12-page document.
const pdfinfoOutput = `Title:           Quarterly Review
Producer:        LibreOffice 7.4
CreationDate:    Mon Jan  1 00:00:00 2024 UTC
Custom Metadata: no
Metadata Stream: no
Tagged:          no
Form:            none
Pages:           12
Encrypted:       no
Page size:       960 x 540 pts
File size:       1284503 bytes
Optimized:       no
PDF version:     1.6
`

func TestPageCount(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		execErr error
		want    int
		wantErr bool
	}{
		{
			name:   "parses Pages line",
			stdout: pdfinfoOutput,
			want:   12,
		},
		{
			name:   "zero pages accepted",
			stdout: "Pages:           0\n",
			want:   0,
		},
		{
			name:    "no Pages line",
			stdout:  "Title: broken\nEncrypted: no\n",
			wantErr: true,
		},
		{
			name:    "unparsable Pages line",
			stdout:  "Pages:           many\n",
			wantErr: true,
		},
		{
			name:    "negative page count rejected",
			stdout:  "Pages:           -1\n",
			wantErr: true,
		},
		{
			name:    "pdfinfo fails",
			execErr: errors.New("pdfinfo: May not be a PDF file"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{
				outputs: map[string][]byte{"pdfinfo deck.pdf": []byte(tt.stdout)},
				errs:    map[string]error{},
			}
			if tt.execErr != nil {
				exec.errs["pdfinfo deck.pdf"] = tt.execErr
			}
			tool := &Tool{exec: exec}

			got, err := tool.PageCount("deck.pdf")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrPageCountUnavailable) {
					t.Errorf("error %v is not ErrPageCountUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d pages, want %d", got, tt.want)
			}
		})
	}
}

// encodePNG returns a PNG of the given size for mock pdftoppm output.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRenderPage(t *testing.T) {
	wantCmd := "pdftoppm -png -r 150 -f 7 -l 7 -singlefile deck.pdf"

	t.Run("renders a single page range", func(t *testing.T) {
		exec := &mockExecutor{
			outputs: map[string][]byte{wantCmd: encodePNG(t, 320, 180)},
		}
		tool := &Tool{exec: exec}

		img, err := tool.RenderPage("deck.pdf", 7, 150)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
			t.Errorf("got %dx%d, want 320x180", b.Dx(), b.Dy())
		}
		if len(exec.calls) != 1 || exec.calls[0] != wantCmd {
			t.Errorf("calls = %v, want [%q]", exec.calls, wantCmd)
		}
	})

	t.Run("pdftoppm failure", func(t *testing.T) {
		exec := &mockExecutor{
			errs: map[string]error{wantCmd: errors.New("Syntax Error: couldn't read xref table")},
		}
		tool := &Tool{exec: exec}

		if _, err := tool.RenderPage("deck.pdf", 7, 150); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("garbage on stdout", func(t *testing.T) {
		exec := &mockExecutor{
			outputs: map[string][]byte{wantCmd: []byte("not a png")},
		}
		tool := &Tool{exec: exec}

		if _, err := tool.RenderPage("deck.pdf", 7, 150); err == nil {
			t.Fatal("expected decode error, got nil")
		}
	})
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		name string
		bins map[string]bool
		want bool
	}{
		{"both present", map[string]bool{"pdfinfo": true, "pdftoppm": true}, true},
		{"pdftoppm missing", map[string]bool{"pdfinfo": true}, false},
		{"pdfinfo missing", map[string]bool{"pdftoppm": true}, false},
		{"neither present", map[string]bool{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := available(&mockExecutor{availableBins: tt.bins}); got != tt.want {
				t.Errorf("available() = %v, want %v", got, tt.want)
			}
		})
	}
}
