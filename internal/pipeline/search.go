package pipeline

import (
	"context"

	"github.com/f3rmion/tamprogen/internal/api"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/rs/zerolog"
)

// Search is the proverb lookup pipeline.
type Search struct {
	client Dispatcher
	input  SearchInput
	t      *tracker
}

// NewSearch creates a search pipeline reading from input and publishing to pub.
func NewSearch(client Dispatcher, input SearchInput, pub Publisher, log zerolog.Logger) *Search {
	return &Search{
		client: client,
		input:  input,
		t:      newTracker(proverb.PipelineSearch, pub, log),
	}
}

// Begin reads the search field and publishes the first state of a new
// attempt. Empty input fails validation without dispatching; ok is false.
func (p *Search) Begin() (a Attempt, ok bool) {
	text := p.input.SearchText()
	if text == "" {
		err := proverb.NewError(proverb.ValidationError, proverb.ErrEmptyInput)
		p.t.begin(proverb.Failed(err, proverb.ActionSearch))
		return Attempt{}, false
	}

	gen := p.t.begin(proverb.Loading(text))
	return Attempt{gen: gen, search: proverb.SearchQuery{Text: text}}, true
}

// Complete dispatches the attempt and commits its outcome unless a newer
// attempt has started. It returns the attempt's own terminal state.
func (p *Search) Complete(ctx context.Context, a Attempt) proverb.State {
	s := p.resolve(ctx, a.search)
	p.t.commit(a.gen, s)
	return s
}

func (p *Search) resolve(ctx context.Context, q proverb.SearchQuery) proverb.State {
	raw, err := p.client.DispatchSearch(ctx, q)
	if err != nil {
		return proverb.Failed(proverb.NewError(proverb.TransportError, err), proverb.ActionSearch)
	}
	out, err := api.InterpretSearch(raw)
	if err != nil {
		return proverb.Failed(proverb.NewError(proverb.ResponseFormatError, err), proverb.ActionSearch)
	}
	return proverb.Searched(out)
}

// Run performs one full search. Retry affordances call Run again, which
// re-reads the live input.
func (p *Search) Run(ctx context.Context) proverb.State {
	a, ok := p.Begin()
	if !ok {
		return p.t.current()
	}
	return p.Complete(ctx, a)
}

// Fail starts a new generation that ends immediately in failure. The voice
// adapter uses it to report recognition errors in the search region.
func (p *Search) Fail(err *proverb.Error, retry proverb.Action) {
	p.t.begin(proverb.Failed(err, retry))
}

// State returns the committed state.
func (p *Search) State() proverb.State {
	return p.t.current()
}
