package portfolio

import (
	"errors"
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"
)

var ErrInvalidKeyword = errors.New("invalid highlight keyword")

// Keyword is a phrase drawn in its own colour wherever it appears in prose.
type Keyword struct {
	Text  string `yaml:"text" json:"text"`
	Color string `yaml:"color" json:"color"`
}

// Highlighter wraps configured keywords in coloured spans.
type Highlighter struct {
	replacer *strings.Replacer
}

// htmlEscapes mirrors html.EscapeString so gaps between keywords are escaped
// in the same pass that finds the keywords.
var htmlEscapes = []string{
	`&`, "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;",
}

// NewHighlighter validates keywords and prepares the replacement table.
// Longer keywords take precedence where two start at the same position.
func NewHighlighter(keywords []Keyword) (*Highlighter, error) {
	sorted := make([]Keyword, len(keywords))
	copy(sorted, keywords)
	for _, k := range sorted {
		if k.Text == "" {
			return nil, fmt.Errorf("%w: empty text", ErrInvalidKeyword)
		}
		if strings.TrimSpace(k.Color) == "" || strings.ContainsAny(k.Color, `;"'<>&{}`) {
			return nil, fmt.Errorf("%w: color %q for %q", ErrInvalidKeyword, k.Color, k.Text)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) > len(sorted[j].Text)
	})

	// Keywords come before the escapes so one starting with a special
	// character wins over escaping that character alone.
	pairs := make([]string, 0, 2*len(sorted)+len(htmlEscapes))
	for _, k := range sorted {
		pairs = append(pairs, k.Text, fmt.Sprintf(`<span style="color: %s; font-weight: 600;">%s</span>`, k.Color, html.EscapeString(k.Text)))
	}
	pairs = append(pairs, htmlEscapes...)
	return &Highlighter{replacer: strings.NewReplacer(pairs...)}, nil
}

// Highlight escapes text and wraps every keyword occurrence. Keywords are
// matched against the raw text, so they never match inside an entity the
// escaping produced. Matches never overlap.
func (h *Highlighter) Highlight(text string) template.HTML {
	if h == nil || h.replacer == nil {
		return template.HTML(html.EscapeString(text))
	}
	return template.HTML(h.replacer.Replace(text))
}
