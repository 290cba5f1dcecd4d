package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"github.com/vforvitorio/portfolio/internal/content"
	"github.com/vforvitorio/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFiles returns the stylesheet and other assets served under /static.
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Linker decides where card links and assets point. The server links back
// to itself; a static export links to sibling files.
type Linker interface {
	ProjectHref(next portfolio.Selection) string
	Asset(name string) string
	Interactive() bool
}

type serverLinker struct{}

func (serverLinker) ProjectHref(next portfolio.Selection) string {
	if next.IsEmpty() {
		return "/#projects"
	}
	return "/?project=" + url.QueryEscape(next.ID()) + "#projects"
}

func (serverLinker) Asset(name string) string { return "/static/" + name }

func (serverLinker) Interactive() bool { return true }

type PageData struct {
	Title          string
	StylesheetHref string
	Interactive    bool
	GridColumns    []portfolio.GridBreakpoint
	Site           content.Site
	AboutSummary   template.HTML
	Nav            NavData
	Projects       ProjectsData
}

type NavData struct {
	Items       []portfolio.NavItem
	Interactive bool
}

type ProjectsData struct {
	Layout      portfolio.Layout
	Grid        bool
	Selected    string
	Cards       []CardData
	Interactive bool
}

type CardData struct {
	portfolio.CardView
	Href        string
	ToggleVals  string
	Interactive bool
}

// BuildProjects renders the selection into template data.
func BuildProjects(b *content.Bundle, sel portfolio.Selection, l Linker) ProjectsData {
	view := portfolio.Render(sel, b.Catalog)
	data := ProjectsData{
		Layout:      view.Layout,
		Grid:        view.IsGrid(),
		Selected:    view.Selected,
		Cards:       make([]CardData, 0, len(view.Cards)),
		Interactive: l.Interactive(),
	}
	for _, card := range view.Cards {
		data.Cards = append(data.Cards, CardData{
			CardView:    card,
			Href:        l.ProjectHref(sel.Toggle(card.Project.ID)),
			ToggleVals:  toggleVals(card.Project.ID, sel),
			Interactive: l.Interactive(),
		})
	}
	return data
}

func toggleVals(id string, sel portfolio.Selection) string {
	raw, _ := json.Marshal(map[string]string{"id": id, "selected": sel.ID()})
	return string(raw)
}

// BuildNav marks the active section.
func BuildNav(active portfolio.Section, l Linker) NavData {
	return NavData{Items: portfolio.Nav(active), Interactive: l.Interactive()}
}

// BuildPage assembles the whole page.
func BuildPage(b *content.Bundle, sel portfolio.Selection, active portfolio.Section, l Linker) PageData {
	return PageData{
		Title:          b.Site.Name,
		StylesheetHref: l.Asset("site.css"),
		Interactive:    l.Interactive(),
		GridColumns:    portfolio.GridColumns,
		Site:           b.Site,
		AboutSummary:   b.Highlighter.Highlight(b.Site.About.Summary),
		Nav:            BuildNav(active, l),
		Projects:       BuildProjects(b, sel, l),
	}
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Page writes the full document.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}
