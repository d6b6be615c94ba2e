package voice

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestLanguageOf(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{"ta-IN", "ta"},
		{"ta", "ta"},
		{"en-US", "en"},
		{"not a locale", ""},
	} {
		t.Run(tt.in, func(t *testing.T) {
			if got := languageOf(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWhisperNoAPIKey(t *testing.T) {
	w := NewWhisper(WhisperOptions{})
	_, err := w.Recognize(context.Background(), Locale)
	var ce *CodeError
	if !errors.As(err, &ce) || ce.Code != CodeNotAllowed {
		t.Fatalf("err = %v, want not-allowed", err)
	}
}

func TestWhisperRecorderFailure(t *testing.T) {
	requireCommand(t, "false")
	w := NewWhisper(WhisperOptions{APIKey: "k", RecordCommand: []string{"false"}})
	_, err := w.Recognize(context.Background(), Locale)
	var ce *CodeError
	if !errors.As(err, &ce) || ce.Code != CodeAudioCapture {
		t.Fatalf("err = %v, want audio-capture", err)
	}
}

func TestWhisperTranscribe(t *testing.T) {
	requireCommand(t, "printf")

	var gotLang, gotModel, gotFormat, gotAuth string
	var gotAudio []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotLang = r.FormValue("language")
		gotModel = r.FormValue("model")
		gotFormat = r.FormValue("response_format")
		f, _, err := r.FormFile("file")
		if err == nil {
			gotAudio, _ = io.ReadAll(f)
			f.Close()
		}
		io.WriteString(w, `{"text":"  யானை  "}`)
	}))
	defer srv.Close()

	w := NewWhisper(WhisperOptions{
		Endpoint:      srv.URL,
		APIKey:        "secret",
		RecordCommand: []string{"printf", "RIFF"},
	})
	text, err := w.Recognize(context.Background(), Locale)
	if err != nil {
		t.Fatal(err)
	}
	if text != "யானை" {
		t.Errorf("text = %q", text)
	}
	if gotLang != "ta" || gotModel != DefaultModel || gotAuth != "Bearer secret" {
		t.Errorf("lang=%q model=%q auth=%q", gotLang, gotModel, gotAuth)
	}
	if gotFormat != "json" {
		t.Errorf("response_format = %q", gotFormat)
	}
	if string(gotAudio) != "RIFF" {
		t.Errorf("audio = %q", gotAudio)
	}
}

func TestWhisperAPIErrors(t *testing.T) {
	requireCommand(t, "printf")

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`, CodeNotAllowed},
		{"server error", http.StatusBadGateway, `upstream down`, CodeNetwork},
		{"silence", http.StatusOK, `{"text":""}`, CodeNoSpeech},
		{"garbage", http.StatusOK, `nope`, CodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			w := NewWhisper(WhisperOptions{Endpoint: srv.URL, APIKey: "k", RecordCommand: []string{"printf", "RIFF"}})
			_, err := w.Recognize(context.Background(), Locale)
			var ce *CodeError
			if !errors.As(err, &ce) || ce.Code != tt.want {
				t.Fatalf("err = %v, want code %s", err, tt.want)
			}
		})
	}
}
