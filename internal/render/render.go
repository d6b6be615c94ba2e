// Package render maps pipeline states to HTML view descriptions.
//
// Render is pure: it looks up nothing and writes nowhere. Committing a view
// to a terminal, a browser or stdout is the caller's job.
package render

import (
	"html/template"
	"strings"

	"github.com/f3rmion/tamprogen/internal/proverb"
)

// Kind tells a sink which variant a view is without parsing its markup.
type Kind string

const (
	KindIdle      Kind = "idle"
	KindLoading   Kind = "loading"
	KindFound     Kind = "found"
	KindGenerated Kind = "generated"
	KindRows      Kind = "rows"
	KindEmpty     Kind = "empty"
	KindFailed    Kind = "failed"
)

// View is a rendered view description.
type View struct {
	Pipeline proverb.PipelineID
	Kind     Kind
	HTML     template.HTML
	Retry    proverb.Action // Action behind the view's retry affordance, if any
}

// Field is one labelled line of a matched proverb card.
type Field struct {
	Icon  string
	Label string
	Value string
}

// RecordFields returns the card fields of r in their fixed display order.
func RecordFields(r proverb.Record) []Field {
	return []Field{
		{Icon: "📜", Label: "Tamil", Value: r.Proverb},
		{Icon: "🔡", Label: "Transliteration", Value: r.Transliteration},
		{Icon: "📝", Label: "Meaning (Tamil)", Value: r.MeaningTamil},
		{Icon: "🌍", Label: "Meaning (English)", Value: r.MeaningEnglish},
		{Icon: "💬", Label: "Example (Tamil)", Value: r.ExampleTamil},
		{Icon: "📘", Label: "Example (English)", Value: r.ExampleEnglish},
		{Icon: "🎭", Label: "Type", Value: r.Type},
	}
}

// TypeClass returns the style class of a category cell.
func TypeClass(category string) string {
	return "type-" + strings.ToLower(category)
}

const viewTemplates = `
{{define "loading"}}<div class="loading"><div class="loader"></div><p>{{.}}</p></div>{{end}}
{{define "found"}}<div class="result-card"><h3>✅ Match Found</h3>{{range .}}<div class="result-item"><span class="label">{{.Icon}} {{.Label}}:</span><span class="value">{{.Value}}</span></div>{{end}}</div>{{end}}
{{define "generated"}}<div class="result-card ai-result"><h3>🤖 AI Generated Explanation</h3>{{.}}</div>{{end}}
{{define "rows"}}<div class="table-wrapper"><table class="proverb-table"><thead><tr><th>Proverb (Tamil)</th><th>Meaning (English)</th><th>Type</th></tr></thead><tbody>{{range .}}<tr><td>{{.Proverb}}</td><td>{{.Meaning}}</td><td class="{{typeClass .Type}}">{{.Type}}</td></tr>{{end}}</tbody></table></div>{{end}}
{{define "empty"}}<div class="no-results"><p>No proverbs found matching your criteria.</p><button class="action" data-action="{{.}}">Try Again</button></div>{{end}}
{{define "failed"}}<div class="error"><p>{{.Message}}</p>{{if .Retry}}<button class="retry-btn" data-action="{{.Retry}}">{{.Label}}</button>{{end}}</div>{{end}}
`

var views = template.Must(template.New("views").
	Funcs(template.FuncMap{"typeClass": TypeClass}).
	Parse(viewTemplates))

type failure struct {
	Message string
	Retry   proverb.Action
	Label   string
}

// Render maps a pipeline state to its view.
func Render(id proverb.PipelineID, s proverb.State) View {
	v := View{Pipeline: id, Retry: s.Retry}

	switch s.Phase {
	case proverb.PhaseLoading:
		v.Kind = KindLoading
		if id == proverb.PipelineSearch {
			v.HTML = execute("loading", `Searching for "`+s.Echo+`"...`)
		} else {
			v.HTML = execute("loading", "Filtering proverbs...")
		}

	case proverb.PhaseSuccess:
		switch {
		case s.Search != nil && s.Search.Found:
			v.Kind = KindFound
			v.HTML = execute("found", RecordFields(s.Search.Record))
		case s.Search != nil:
			v.Kind = KindGenerated
			v.HTML = execute("generated", FormatExplanation(s.Search.Generated))
		case s.Filter != nil && !s.Filter.Empty():
			v.Kind = KindRows
			v.HTML = execute("rows", s.Filter.Rows)
		default:
			v.Kind = KindEmpty
			v.Retry = proverb.ActionFilter
			v.HTML = execute("empty", v.Retry)
		}

	case proverb.PhaseEmpty:
		v.Kind = KindEmpty
		if v.Retry == proverb.ActionNone {
			v.Retry = proverb.ActionFilter
		}
		v.HTML = execute("empty", v.Retry)

	case proverb.PhaseFailed:
		v.Kind = KindFailed
		v.HTML = execute("failed", failureOf(s))

	default:
		v.Kind = KindIdle
	}

	return v
}

func failureOf(s proverb.State) failure {
	f := failure{Retry: s.Retry, Label: "Retry"}
	kind := proverb.ErrorKind(0)
	if s.Err != nil {
		kind = s.Err.Kind
	}

	switch kind {
	case proverb.RecognitionError:
		f.Message = "🎤 Voice input failed: " + s.Err.Code
		f.Label = "Try Again"
	case proverb.ValidationError:
		f.Message = "Please enter a proverb to search: " + s.Message()
	default:
		f.Message = "❌ Error: " + s.Message()
	}
	return f
}

func execute(name string, data any) template.HTML {
	var b strings.Builder
	if err := views.ExecuteTemplate(&b, name, data); err != nil {
		return template.HTML(`<div class="error"><p>` + template.HTMLEscapeString(err.Error()) + `</p></div>`)
	}
	return template.HTML(b.String())
}
