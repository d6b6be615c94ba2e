// Package pipeline drives the search and filter request lifecycles.
//
// Each pipeline publishes Loading synchronously, dispatches one request,
// classifies the response and commits a terminal state. A monotonic
// generation counter guards every commit so a response that arrives after a
// newer action began is dropped instead of overwriting the fresher state.
package pipeline

import (
	"context"
	"sync"

	"github.com/f3rmion/tamprogen/internal/api"
	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/rs/zerolog"
)

// Publisher receives every state a pipeline commits. Implementations must
// not call back into the pipeline.
type Publisher interface {
	Publish(id proverb.PipelineID, s proverb.State)
}

// Dispatcher issues requests to the remote service.
type Dispatcher interface {
	DispatchSearch(ctx context.Context, q proverb.SearchQuery) (*api.RawResponse, error)
	DispatchFilter(ctx context.Context, q proverb.FilterQuery) (*api.RawResponse, error)
}

// tracker owns the state and generation of one pipeline.
type tracker struct {
	id  proverb.PipelineID
	pub Publisher
	log zerolog.Logger

	mu         sync.Mutex
	generation uint64
	state      proverb.State
}

func newTracker(id proverb.PipelineID, pub Publisher, log zerolog.Logger) *tracker {
	return &tracker{
		id:    id,
		pub:   pub,
		log:   log.With().Str("pipeline", string(id)).Logger(),
		state: proverb.Idle(),
	}
}

// begin starts a new generation and publishes s as its first state.
func (t *tracker) begin(s proverb.State) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	t.state = s
	t.pub.Publish(t.id, s)
	t.log.Debug().Uint64("gen", t.generation).Stringer("phase", s.Phase).Msg("begin")
	return t.generation
}

// commit publishes s only if gen is still the current generation.
func (t *tracker) commit(gen uint64, s proverb.State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.log.Debug().Uint64("gen", gen).Uint64("current", t.generation).Msg("dropping stale response")
		return false
	}
	t.state = s
	t.pub.Publish(t.id, s)
	t.log.Debug().Uint64("gen", gen).Stringer("phase", s.Phase).Msg("commit")
	return true
}

func (t *tracker) current() proverb.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Attempt is one in-flight request started by Begin.
type Attempt struct {
	gen    uint64
	search proverb.SearchQuery
	filter proverb.FilterQuery
}

// Generation returns the generation token of the attempt.
func (a Attempt) Generation() uint64 {
	return a.gen
}
