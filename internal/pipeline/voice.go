package pipeline

import (
	"context"

	"github.com/f3rmion/tamprogen/internal/proverb"
	"github.com/f3rmion/tamprogen/internal/voice"
)

// TranscriptSink receives a recognized transcript as search input.
type TranscriptSink interface {
	SetSearchText(string)
}

// VoiceSearch feeds voice transcripts into the search pipeline. It is the
// only path by which one flow triggers another.
type VoiceSearch struct {
	adapter *voice.Adapter
	fields  TranscriptSink
	search  *Search
}

// NewVoiceSearch wires an adapter to a search pipeline.
func NewVoiceSearch(adapter *voice.Adapter, fields TranscriptSink, search *Search) *VoiceSearch {
	return &VoiceSearch{adapter: adapter, fields: fields, search: search}
}

// Adapter returns the underlying voice adapter.
func (v *VoiceSearch) Adapter() *voice.Adapter {
	return v.adapter
}

// Handle applies a finished voice session. A transcript is written to the
// search field and a search begins; a failure is shown in the search region
// with a retry that listens again.
func (v *VoiceSearch) Handle(res voice.Result) (Attempt, bool) {
	if !res.OK() {
		v.search.Fail(proverb.NewRecognitionError(res.Code, res.Err), proverb.ActionVoice)
		return Attempt{}, false
	}
	v.fields.SetSearchText(res.Transcript)
	return v.search.Begin()
}

// Run listens once and, on success, runs the search to completion.
func (v *VoiceSearch) Run(ctx context.Context) proverb.State {
	a, ok := v.Handle(v.adapter.Listen(ctx))
	if !ok {
		return v.search.State()
	}
	return v.search.Complete(ctx, a)
}
