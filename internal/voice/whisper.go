package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os/exec"
	"strings"

	"golang.org/x/text/language"
)

const (
	DefaultEndpoint = "https://api.groq.com/openai/v1/audio/transcriptions"
	DefaultModel    = "whisper-large-v3-turbo"
)

// DefaultRecordCommand captures five seconds of 16 kHz mono WAV to stdout.
var DefaultRecordCommand = []string{"arecord", "-q", "-d", "5", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "wav", "-"}

// Whisper records a clip with an external command and transcribes it with a
// Whisper-compatible HTTP endpoint.
type Whisper struct {
	endpoint   string
	model      string
	apiKey     string
	record     []string
	httpClient *http.Client
}

// WhisperOptions configures a Whisper recognizer. Empty fields use defaults.
type WhisperOptions struct {
	Endpoint      string
	Model         string
	APIKey        string
	RecordCommand []string
	HTTPClient    *http.Client
}

type whisperResponse struct {
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewWhisper creates a Whisper recognizer.
func NewWhisper(opts WhisperOptions) *Whisper {
	w := &Whisper{
		endpoint:   opts.Endpoint,
		model:      opts.Model,
		apiKey:     strings.TrimSpace(opts.APIKey),
		record:     opts.RecordCommand,
		httpClient: opts.HTTPClient,
	}
	if w.endpoint == "" {
		w.endpoint = DefaultEndpoint
	}
	if w.model == "" {
		w.model = DefaultModel
	}
	if len(w.record) == 0 {
		w.record = DefaultRecordCommand
	}
	if w.httpClient == nil {
		w.httpClient = &http.Client{}
	}
	return w
}

// Recognize records one clip and returns its transcript.
func (w *Whisper) Recognize(ctx context.Context, locale string) (string, error) {
	if w.apiKey == "" {
		return "", &CodeError{Code: CodeNotAllowed, Err: errors.New("no transcription API key configured")}
	}

	audio, err := w.capture(ctx)
	if err != nil {
		return "", err
	}

	return w.transcribe(ctx, audio, languageOf(locale))
}

func (w *Whisper) capture(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, w.record[0], w.record[1:]...)
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, &CodeError{Code: CodeAborted, Err: ctx.Err()}
		}
		return nil, &CodeError{Code: CodeAudioCapture, Err: fmt.Errorf("running %s: %w", w.record[0], err)}
	}
	if len(out) == 0 {
		return nil, &CodeError{Code: CodeAudioCapture, Err: errors.New("recorder produced no audio")}
	}
	return out, nil
}

func (w *Whisper) transcribe(ctx context.Context, audio []byte, lang string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}
	fields := [][2]string{{"model", w.model}, {"response_format", "json"}}
	if lang != "" {
		fields = append(fields, [2]string{"language", lang})
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("writing %s field: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", &CodeError{Code: CodeAborted, Err: err}
		}
		return "", &CodeError{Code: CodeNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CodeError{Code: CodeNetwork, Err: fmt.Errorf("reading response: %w", err)}
	}

	var wr whisperResponse
	parseErr := json.Unmarshal(data, &wr)
	if resp.StatusCode != http.StatusOK {
		msg := string(data)
		if parseErr == nil && wr.Error != nil {
			msg = wr.Error.Message
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return "", &CodeError{Code: CodeNotAllowed, Err: fmt.Errorf("transcription API error %d: %s", resp.StatusCode, msg)}
		}
		return "", &CodeError{Code: CodeNetwork, Err: fmt.Errorf("transcription API error %d: %s", resp.StatusCode, msg)}
	}

	if parseErr != nil {
		return "", &CodeError{Code: CodeNetwork, Err: fmt.Errorf("transcription response parse error: %w", parseErr)}
	}

	text := strings.TrimSpace(wr.Text)
	if text == "" {
		return "", &CodeError{Code: CodeNoSpeech}
	}
	return text, nil
}

// languageOf reduces a BCP 47 locale such as "ta-IN" to the ISO 639-1 code
// the transcription API expects.
func languageOf(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}
