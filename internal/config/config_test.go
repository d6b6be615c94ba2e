package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != DefaultBaseURL {
		t.Errorf("APIBase = %q", cfg.APIBase)
	}
	if cfg.Serve.Addr != "127.0.0.1:8080" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := "api_base: https://proverbs.example\nvoice:\n  model: whisper-large-v3\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != "https://proverbs.example" {
		t.Errorf("APIBase = %q", cfg.APIBase)
	}
	if cfg.Voice.Model != "whisper-large-v3" {
		t.Errorf("Voice.Model = %q", cfg.Voice.Model)
	}
	if cfg.Serve.Addr == "" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("api_base: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.APIBase = "http://10.0.0.5:8000"
	cfg.Voice.RecordCommand = []string{"sox", "-d", "-t", "wav", "-"}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.APIBase != cfg.APIBase || len(got.Voice.RecordCommand) != 5 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")
	dir, err := EnsureConfigDir(want)
	if err != nil {
		t.Fatalf("EnsureConfigDir: %v", err)
	}
	if dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ".config", "tamprogen") {
		t.Errorf("dir = %q", dir)
	}
}

func TestLoadHasNoLocaleSetting(t *testing.T) {
	dir := t.TempDir()
	data := "voice:\n  locale: en-US\n  model: whisper-large-v3\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Voice.Model != "whisper-large-v3" {
		t.Errorf("Voice.Model = %q", cfg.Voice.Model)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "locale") || strings.Contains(string(out), "en-US") {
		t.Errorf("locale leaked into config:\n%s", out)
	}
}
