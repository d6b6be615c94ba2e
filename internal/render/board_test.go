package render

import (
	"testing"

	"github.com/f3rmion/tamprogen/internal/proverb"
)

func TestBoard(t *testing.T) {
	b := NewBoard()
	if v := b.View(proverb.PipelineSearch); v.Kind != KindIdle {
		t.Fatalf("initial view = %s, want idle", v.Kind)
	}

	var committed []View
	b.OnCommit(func(v View) { committed = append(committed, v) })

	b.Publish(proverb.PipelineSearch, proverb.Loading("x"))
	b.Publish(proverb.PipelineFilter, proverb.Filtered(proverb.FilterOutcome{}))

	if v := b.View(proverb.PipelineSearch); v.Kind != KindLoading {
		t.Errorf("search view = %s, want loading", v.Kind)
	}
	if v := b.View(proverb.PipelineFilter); v.Kind != KindEmpty {
		t.Errorf("filter view = %s, want empty", v.Kind)
	}
	if len(committed) != 2 || committed[1].Pipeline != proverb.PipelineFilter {
		t.Errorf("commits = %+v", committed)
	}
}
