// Package portfolio holds the project catalog, the expanded-card selection
// and the view decisions the page templates render from.
package portfolio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyProjectID     = errors.New("project id is empty")
	ErrDuplicateProjectID = errors.New("duplicate project id")
	ErrInvalidProjectID   = errors.New("project id has surrounding whitespace")
)

// ProjectRecord is one showcase entry. Details is nil when the project has
// no expanded content.
type ProjectRecord struct {
	ID             string          `yaml:"id" json:"id"`
	Title          string          `yaml:"title" json:"title"`
	Summary        string          `yaml:"summary" json:"summary"`
	Technologies   string          `yaml:"technologies" json:"technologies"`
	RepositoryLink string          `yaml:"repository_link" json:"repository_link"`
	LinkText       string          `yaml:"link_text,omitempty" json:"link_text,omitempty"`
	Details        *ProjectDetails `yaml:"details,omitempty" json:"details,omitempty"`
}

// ProjectDetails is the payload shown beneath an expanded card.
type ProjectDetails struct {
	Description              string   `yaml:"description" json:"description"`
	KeyFeatures              []string `yaml:"key_features" json:"key_features"`
	DevelopmentContributions []string `yaml:"development_contributions" json:"development_contributions"`
	ResearchContributions    []string `yaml:"research_contributions" json:"research_contributions"`
	Image                    string   `yaml:"image,omitempty" json:"image,omitempty"`
	ResearchImage            string   `yaml:"research_image,omitempty" json:"research_image,omitempty"`
}

const defaultLinkText = "GitHub Repository"

// Link returns the label for the repository link.
func (p ProjectRecord) Link() string {
	if strings.TrimSpace(p.LinkText) == "" {
		return defaultLinkText
	}
	return p.LinkText
}

// HasDetails reports whether the record carries an expanded payload.
func (p ProjectRecord) HasDetails() bool {
	return p.Details != nil
}

// Catalog is the ordered project list indexed by id.
type Catalog struct {
	projects []ProjectRecord
	index    map[string]int
}

// NewCatalog builds a catalog, keeping the given order. Ids must be
// non-empty, unique and free of surrounding whitespace, since requests
// carry them trimmed.
func NewCatalog(records ...ProjectRecord) (*Catalog, error) {
	c := &Catalog{
		projects: make([]ProjectRecord, 0, len(records)),
		index:    make(map[string]int, len(records)),
	}
	for i, r := range records {
		if strings.TrimSpace(r.ID) == "" {
			return nil, fmt.Errorf("project %d (%q): %w", i, r.Title, ErrEmptyProjectID)
		}
		if strings.TrimSpace(r.ID) != r.ID {
			return nil, fmt.Errorf("project %q: %w", r.ID, ErrInvalidProjectID)
		}
		if _, ok := c.index[r.ID]; ok {
			return nil, fmt.Errorf("project %q: %w", r.ID, ErrDuplicateProjectID)
		}
		c.index[r.ID] = len(c.projects)
		c.projects = append(c.projects, r.clone())
	}
	return c, nil
}

// Projects returns deep copies of the records in catalog order.
func (c *Catalog) Projects() []ProjectRecord {
	out := make([]ProjectRecord, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out
}

// Len is the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Has reports whether id names a project.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Lookup finds a record by id and returns a deep copy of it.
func (c *Catalog) Lookup(id string) (ProjectRecord, bool) {
	i, ok := c.index[id]
	if !ok {
		return ProjectRecord{}, false
	}
	return c.projects[i].clone(), true
}

// clone copies the record including its details and their slices, so
// callers cannot reach into the catalog.
func (p ProjectRecord) clone() ProjectRecord {
	if p.Details == nil {
		return p
	}
	d := *p.Details
	d.KeyFeatures = cloneStrings(d.KeyFeatures)
	d.DevelopmentContributions = cloneStrings(d.DevelopmentContributions)
	d.ResearchContributions = cloneStrings(d.ResearchContributions)
	p.Details = &d
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
