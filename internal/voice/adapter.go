// Package voice wraps a speech recognizer behind a single-session
// "transcript or failure" contract.
package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Locale is the single input locale the recognizer is configured for.
const Locale = "ta-IN"

// Recognition error codes, named after the browser speech API codes.
const (
	CodeNoSpeech     = "no-speech"
	CodeAudioCapture = "audio-capture"
	CodeNetwork      = "network"
	CodeNotAllowed   = "not-allowed"
	CodeAborted      = "aborted"
	CodeBusy         = "busy"
)

// ErrBusy is returned by Start while another session is active.
var ErrBusy = errors.New("a recognition session is already active")

// Recognizer is the platform speech capability. It returns a final
// transcript, or an error that should be a *CodeError.
type Recognizer interface {
	Recognize(ctx context.Context, locale string) (string, error)
}

// CodeError is a recognizer failure carrying a speech API error code.
type CodeError struct {
	Code string
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// Status is the adapter's state machine position.
type Status int

const (
	StatusIdle Status = iota
	StatusListening
	StatusTranscriptReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusListening:
		return "listening"
	case StatusTranscriptReady:
		return "transcript ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one session: a transcript, or a failure code.
type Result struct {
	Transcript string
	Code       string
	Err        error
}

// OK reports whether the session produced a transcript.
func (r Result) OK() bool {
	return r.Code == ""
}

// Adapter runs at most one recognition session at a time.
type Adapter struct {
	rec Recognizer
	log zerolog.Logger

	mu     sync.Mutex
	status Status
}

// NewAdapter creates an adapter around rec, listening in Locale.
func NewAdapter(rec Recognizer, log zerolog.Logger) *Adapter {
	return &Adapter{
		rec: rec,
		log: log.With().Str("component", "voice").Logger(),
	}
}

// Status returns the current state. The mic affordance shows "listening"
// exactly while this is StatusListening.
func (a *Adapter) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Locale returns the recognizer locale.
func (a *Adapter) Locale() string {
	return Locale
}

// Session is one active recognition.
type Session struct {
	a    *Adapter
	once sync.Once
	res  Result
}

// Start moves the adapter to Listening. It fails with ErrBusy while another
// session is active.
func (a *Adapter) Start() (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == StatusListening {
		return nil, ErrBusy
	}
	a.status = StatusListening
	a.log.Info().Str("locale", Locale).Msg("listening")
	return &Session{a: a}, nil
}

// Wait blocks until the recognizer returns and records the terminal state.
// Calling Wait again returns the same result.
func (s *Session) Wait(ctx context.Context) Result {
	s.once.Do(func() {
		s.res = s.a.recognize(ctx)
	})
	return s.res
}

func (a *Adapter) recognize(ctx context.Context) Result {
	text, err := a.rec.Recognize(ctx, Locale)

	var res Result
	switch {
	case err != nil:
		res = Result{Code: codeOf(ctx, err), Err: err}
	case text == "":
		res = Result{Code: CodeNoSpeech}
	default:
		res = Result{Transcript: text}
	}

	a.mu.Lock()
	if res.OK() {
		a.status = StatusTranscriptReady
	} else {
		a.status = StatusFailed
	}
	a.mu.Unlock()

	if res.OK() {
		a.log.Info().Int("chars", len(res.Transcript)).Msg("transcript ready")
	} else {
		a.log.Warn().Str("code", res.Code).Err(err).Msg("recognition failed")
	}
	return res
}

// Listen runs one complete session. A concurrent call fails with CodeBusy
// without touching the active session.
func (a *Adapter) Listen(ctx context.Context) Result {
	s, err := a.Start()
	if err != nil {
		return Result{Code: CodeBusy, Err: err}
	}
	return s.Wait(ctx)
}

func codeOf(ctx context.Context, err error) string {
	var ce *CodeError
	if errors.As(err, &ce) && ce.Code != "" {
		return ce.Code
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return CodeAborted
	}
	return CodeNetwork
}
