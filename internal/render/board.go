package render

import (
	"sync"

	"github.com/f3rmion/tamprogen/internal/proverb"
)

// Board holds the latest committed view of each pipeline. It is the sink the
// wiring layer hands to the pipelines; readers pull views from it.
type Board struct {
	mu       sync.Mutex
	views    map[proverb.PipelineID]View
	onCommit func(View)
}

// NewBoard creates a board with every pipeline idle.
func NewBoard() *Board {
	return &Board{views: make(map[proverb.PipelineID]View)}
}

// OnCommit registers fn to be called after every commit, outside the lock.
func (b *Board) OnCommit(fn func(View)) {
	b.mu.Lock()
	b.onCommit = fn
	b.mu.Unlock()
}

// Publish renders s and stores the result as the pipeline's current view.
func (b *Board) Publish(id proverb.PipelineID, s proverb.State) {
	v := Render(id, s)

	b.mu.Lock()
	b.views[id] = v
	fn := b.onCommit
	b.mu.Unlock()

	if fn != nil {
		fn(v)
	}
}

// View returns the current view of a pipeline.
func (b *Board) View(id proverb.PipelineID) View {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.views[id]; ok {
		return v
	}
	return View{Pipeline: id, Kind: KindIdle}
}
