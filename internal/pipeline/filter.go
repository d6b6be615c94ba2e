package pipeline

import (
	"context"

	"github.com/f3rmion/tamprogen/internal/api"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/rs/zerolog"
)

// Filter is the proverb filter pipeline.
type Filter struct {
	client Dispatcher
	input  FilterInput
	t      *tracker
}

// NewFilter creates a filter pipeline reading from input and publishing to pub.
func NewFilter(client Dispatcher, input FilterInput, pub Publisher, log zerolog.Logger) *Filter {
	return &Filter{
		client: client,
		input:  input,
		t:      newTracker(proverb.PipelineFilter, pub, log),
	}
}

// Begin reads the filter fields and publishes Loading. Filtering has no
// validation step, so it always returns an attempt.
func (p *Filter) Begin() Attempt {
	q := p.input.FilterQuery().Normalize()
	gen := p.t.begin(proverb.Loading(q.Keyword))
	return Attempt{gen: gen, filter: q}
}

// Complete dispatches the attempt and commits its outcome unless a newer
// attempt has started.
func (p *Filter) Complete(ctx context.Context, a Attempt) proverb.State {
	s := p.resolve(ctx, a.filter)
	p.t.commit(a.gen, s)
	return s
}

func (p *Filter) resolve(ctx context.Context, q proverb.FilterQuery) proverb.State {
	raw, err := p.client.DispatchFilter(ctx, q)
	if err != nil {
		return proverb.Failed(proverb.NewError(proverb.TransportError, err), proverb.ActionFilter)
	}
	out, err := api.InterpretFilter(raw)
	if err != nil {
		return proverb.Failed(proverb.NewError(proverb.ResponseFormatError, err), proverb.ActionFilter)
	}
	return proverb.Filtered(out)
}

// Run performs one full filter call.
func (p *Filter) Run(ctx context.Context) proverb.State {
	return p.Complete(ctx, p.Begin())
}

// State returns the committed state.
func (p *Filter) State() proverb.State {
	return p.t.current()
}
