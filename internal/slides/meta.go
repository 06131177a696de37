// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/slidegen/pkg/types"
)

// writeMetadata persists meta as indented JSON, overwriting any previous
// file at path. It writes to a temp file in the destination directory and
// renames it into place, so a metadata file, when present, always
// describes a fully completed run.
func writeMetadata(path string, meta types.Metadata) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".meta-*.json")
	if err != nil {
		return fmt.Errorf("creating metadata temp file: %w", err)
	}
	// CreateTemp files are 0600; the viewer must be able to read the
	// descriptor just like the slide images.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("setting metadata permissions: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing metadata: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("placing %s: %w", path, err)
	}
	return nil
}
