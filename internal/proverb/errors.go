package proverb

import "errors"

// ErrorKind classifies failures at the pipeline boundary.
type ErrorKind int

const (
	ValidationError     ErrorKind = iota + 1 // Local, no request made
	TransportError                           // The HTTP call itself failed
	ResponseFormatError                      // Body did not decode
	RecognitionError                         // Voice capability failed
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationError:
		return "validation"
	case TransportError:
		return "transport"
	case ResponseFormatError:
		return "response format"
	case RecognitionError:
		return "recognition"
	default:
		return "unknown"
	}
}

// ErrEmptyInput is returned when the search field is empty after trimming.
var ErrEmptyInput = errors.New("empty input")

// Error is a classified pipeline failure. Its message is the underlying
// error's text, unchanged.
type Error struct {
	Kind ErrorKind
	Code string // Recognition error code, e.g. "no-speech"
	Err  error
}

// NewError classifies err.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// NewRecognitionError wraps a voice failure code.
func NewRecognitionError(code string, err error) *Error {
	return &Error{Kind: RecognitionError, Code: code, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
