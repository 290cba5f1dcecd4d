// Package content loads the site copy and project catalog from YAML.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vforvitorio/portfolio/internal/portfolio"
)

//go:embed portfolio.yaml
var defaultYAML []byte

// Link is an outbound link drawn with an icon.
type Link struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
}

type Skill struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Education struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Logo        string `yaml:"logo"`
}

type About struct {
	Summary    string      `yaml:"summary"`
	Skills     []Skill     `yaml:"skills"`
	Experience []string    `yaml:"experience"`
	Education  []Education `yaml:"education"`
}

type Blog struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
	Link    Link   `yaml:"link"`
}

type Contact struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
	Links   []Link `yaml:"links"`
}

// Site is everything the page shows.
type Site struct {
	Name       string                    `yaml:"name"`
	Tagline    string                    `yaml:"tagline"`
	Bio        string                    `yaml:"bio"`
	AvatarURL  string                    `yaml:"avatar_url"`
	Social     []Link                    `yaml:"social"`
	Highlights []portfolio.Keyword       `yaml:"highlights"`
	About      About                     `yaml:"about"`
	Projects   []portfolio.ProjectRecord `yaml:"projects"`
	Blog       Blog                      `yaml:"blog"`
	Contact    Contact                   `yaml:"contact"`
}

// Bundle is a validated site with its derived catalog and highlighter.
type Bundle struct {
	Site        Site
	Catalog     *portfolio.Catalog
	Highlighter *portfolio.Highlighter
}

// Default returns the bundle built from the embedded content.
func Default() (*Bundle, error) {
	return Parse(defaultYAML)
}

// Load reads path, or the embedded content when path is empty.
func Load(path string) (*Bundle, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes YAML content and validates the catalog and highlights.
func Parse(data []byte) (*Bundle, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	cat, err := portfolio.NewCatalog(site.Projects...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	hl, err := portfolio.NewHighlighter(site.Highlights)
	if err != nil {
		return nil, fmt.Errorf("build highlighter: %w", err)
	}
	return &Bundle{Site: site, Catalog: cat, Highlighter: hl}, nil
}
