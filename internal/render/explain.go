package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// emphasis matches the shortest non-empty span between a `\*` and a `*\` marker.
var emphasis = regexp.MustCompile(`\\\*(.+?)\*\\`)

// explanationPolicy keeps only the markup FormatExplanation itself produces.
var explanationPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "br")
	return p
}()

// FormatExplanation turns generated text into the markup of an AI box.
// The text is untrusted: reserved characters are escaped before emphasis
// markers become <strong> and newlines become <br>.
func FormatExplanation(text string) template.HTML {
	s := html.EscapeString(text)
	s = emphasis.ReplaceAllString(s, "<strong>$1</strong>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = explanationPolicy.Sanitize(s)
	return template.HTML(`<div class="ai-box">` + s + `</div>`)
}
