package cmd

import (
	"testing"

	"github.com/f3rmion/tamprogen/internal/config"
)

func TestNewRecognizer(t *testing.T) {
	cfg := config.Default()

	rec, desc := newRecognizer(cfg, "")
	if rec != nil || desc != "" {
		t.Errorf("without a key got %v %q, want voice off", rec, desc)
	}

	rec, desc = newRecognizer(cfg, "gsk_test")
	if rec == nil {
		t.Fatal("expected a recognizer with a key")
	}
	if desc != "Whisper (whisper-large-v3-turbo)" {
		t.Errorf("desc = %q", desc)
	}

	cfg.Voice.Model = "whisper-large-v3"
	if _, desc = newRecognizer(cfg, "gsk_test"); desc != "Whisper (whisper-large-v3)" {
		t.Errorf("desc = %q", desc)
	}
}
