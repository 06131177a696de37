// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SilenceUsage = false
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootMissingSource(t *testing.T) {
	out, err := execRoot(t, filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "source PDF not found") {
		t.Errorf("error = %v, want a source-not-found message", err)
	}
	// a missing source is a runtime failure, not a usage mistake
	if strings.Contains(out, "Usage:") {
		t.Errorf("missing source printed usage text:\n%s", out)
	}
}

func TestRootWrongArgumentCount(t *testing.T) {
	out, err := execRoot(t)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("wrong argument count should print usage, got:\n%s", out)
	}
}
