package voice

import "context"

// Fake is a recognizer that returns a fixed transcript or error.
type Fake struct {
	Text string
	Err  error

	// Block, when set, is waited on before returning.
	Block chan struct{}

	Locales []string
}

// NewFake creates a fake recognizer.
func NewFake(text string, err error) *Fake {
	return &Fake{Text: text, Err: err}
}

func (f *Fake) Recognize(ctx context.Context, locale string) (string, error) {
	f.Locales = append(f.Locales, locale)
	if f.Block != nil {
		select {
		case <-f.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.Text, f.Err
}
