package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/tamprogen/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tamprogen")

	path, err := writeDefaultConfig(dir, false)
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if path != filepath.Join(dir, config.FileName) {
		t.Errorf("path = %q", path)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != config.DefaultBaseURL {
		t.Errorf("APIBase = %q", cfg.APIBase)
	}
}

func TestWriteDefaultConfigKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte("api_base: http://mine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := writeDefaultConfig(dir, false); err == nil {
		t.Fatal("expected an error for an existing file")
	}
	if cfg, _ := config.Load(dir); cfg.APIBase != "http://mine" {
		t.Errorf("existing file overwritten: %q", cfg.APIBase)
	}

	if _, err := writeDefaultConfig(dir, true); err != nil {
		t.Fatalf("force: %v", err)
	}
	if cfg, _ := config.Load(dir); cfg.APIBase != config.DefaultBaseURL {
		t.Errorf("force did not reset: %q", cfg.APIBase)
	}
}
