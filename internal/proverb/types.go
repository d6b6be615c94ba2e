// Package proverb provides the core types shared by the lookup and filter pipelines.
package proverb

import "strings"

// Category is the literal/figurative tag the service attaches to each proverb.
type Category string

const (
	CategoryAll        Category = "All"        // Sentinel meaning "no type filter"
	CategoryLiteral    Category = "Literal"    // Meaning follows the words
	CategoryFigurative Category = "Figurative" // Meaning is metaphorical
)

// Categories lists the filter choices in display order.
var Categories = []Category{CategoryAll, CategoryLiteral, CategoryFigurative}

// SearchQuery is the input of one search dispatch.
// Text is trimmed and non-empty by the time it reaches the dispatcher.
type SearchQuery struct {
	Text string `json:"input_text"`
}

// FilterQuery is the input of one filter dispatch.
type FilterQuery struct {
	Type    Category `json:"type"`    // CategoryAll when unset
	Keyword string   `json:"keyword"` // May be empty
}

// Normalize trims the keyword and replaces an empty type with CategoryAll.
func (q FilterQuery) Normalize() FilterQuery {
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Type = Category(strings.TrimSpace(string(q.Type)))
	if q.Type == "" {
		q.Type = CategoryAll
	}
	return q
}

// Record is a matched proverb as returned by the search endpoint.
// Fields missing from the payload stay empty; the record is never mutated after decoding.
type Record struct {
	Proverb         string `json:"Proverb_Tamil"`
	Transliteration string `json:"Transliteration"`
	MeaningTamil    string `json:"Meaning_Tamil"`
	MeaningEnglish  string `json:"Meaning_English"`
	ExampleTamil    string `json:"Example_Tamil"`
	ExampleEnglish  string `json:"Example_English"`
	Type            string `json:"Type"`
}

// FilterRow is one row of a filter response. Slice order is display order.
type FilterRow struct {
	Proverb string `json:"Proverb (Tamil)"`
	Meaning string `json:"Meaning (English)"`
	Type    string `json:"Literal/Figurative"`
}

// SearchOutcome is either a matched record or AI-generated text.
type SearchOutcome struct {
	Found     bool
	Record    Record // Set when Found
	Generated string // Set when !Found
}

// Found wraps a matched record.
func Found(r Record) SearchOutcome {
	return SearchOutcome{Found: true, Record: r}
}

// Generated wraps a fallback explanation.
func Generated(text string) SearchOutcome {
	return SearchOutcome{Generated: text}
}

// FilterOutcome holds the rows of a filter response. No rows means Empty.
type FilterOutcome struct {
	Rows []FilterRow
}

// Empty reports whether the filter matched nothing.
func (o FilterOutcome) Empty() bool {
	return len(o.Rows) == 0
}
