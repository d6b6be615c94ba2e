package pipeline

import (
	"strings"
	"sync"

	"github.com/f3rmion/tamprogen/internal/proverb"
)

// SearchInput reads the live search field.
type SearchInput interface {
	SearchText() string
}

// FilterInput reads the live filter fields.
type FilterInput interface {
	FilterQuery() proverb.FilterQuery
}

// Fields is the live input state shared by the wiring layer and the
// pipelines. Retries read it again instead of reusing old parameters.
type Fields struct {
	mu       sync.Mutex
	search   string
	category proverb.Category
	keyword  string
}

// NewFields creates empty fields with the type filter unset.
func NewFields() *Fields {
	return &Fields{category: proverb.CategoryAll}
}

// SearchText returns the trimmed search text.
func (f *Fields) SearchText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.TrimSpace(f.search)
}

// SetSearchText replaces the search text.
func (f *Fields) SetSearchText(s string) {
	f.mu.Lock()
	f.search = s
	f.mu.Unlock()
}

// FilterQuery returns the normalized filter fields.
func (f *Fields) FilterQuery() proverb.FilterQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return proverb.FilterQuery{Type: f.category, Keyword: f.keyword}.Normalize()
}

// SetFilter replaces the filter fields.
func (f *Fields) SetFilter(category proverb.Category, keyword string) {
	f.mu.Lock()
	f.category = category
	f.keyword = keyword
	f.mu.Unlock()
}
