// Package config handles loading and saving user configuration for tamprogen.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// DefaultBaseURL is the proverb service address used when none is configured.
var DefaultBaseURL = "http://localhost:8000"

// Config holds all user configuration.
type Config struct {
	APIBase string      `yaml:"api_base"`
	Voice   VoiceConfig `yaml:"voice"`
	Serve   ServeConfig `yaml:"serve"`
}

// VoiceConfig holds settings for speech recognition. The input locale is
// fixed and not configurable.
type VoiceConfig struct {
	Endpoint      string   `yaml:"endpoint"`       // Whisper-compatible transcription URL
	Model         string   `yaml:"model"`          // e.g. "whisper-large-v3-turbo"
	RecordCommand []string `yaml:"record_command"` // Writes one WAV clip to stdout
}

// ServeConfig holds settings for the web front end.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		APIBase: DefaultBaseURL,
		Serve: ServeConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Load reads the configuration from dir. A missing file yields Default;
// fields absent from the file keep their default values.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to dir.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tamprogen"), nil
}

// EnsureConfigDir creates dir if it doesn't exist. An empty dir means
// GetConfigDir.
func EnsureConfigDir(dir string) (string, error) {
	if dir == "" {
		d, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}
