// Package export writes the site as plain HTML files that work without a
// server: one page per selection state, linked to each other.
package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/vforvitorio/portfolio/internal/content"
	"github.com/vforvitorio/portfolio/internal/portfolio"
	"github.com/vforvitorio/portfolio/internal/web"
)

// ids become file names, so keep them to a safe alphabet
var fileSafeID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// staticLinker links pages by relative path. depth is how many directories
// below the output root the page being rendered sits.
type staticLinker struct {
	prefix string
}

func linkerAt(depth int) staticLinker {
	prefix := ""
	for i := 0; i < depth; i++ {
		prefix += "../"
	}
	return staticLinker{prefix: prefix}
}

func (l staticLinker) ProjectHref(next portfolio.Selection) string {
	if next.IsEmpty() {
		return l.prefix + "index.html#projects"
	}
	return l.prefix + ProjectPage(next.ID()) + "#projects"
}

func (l staticLinker) Asset(name string) string { return l.prefix + "static/" + name }

func (staticLinker) Interactive() bool { return false }

// ProjectPage is the output path of the page with id expanded.
func ProjectPage(id string) string {
	return "projects/" + id + ".html"
}

// Result lists the files written.
type Result struct {
	Pages  []string
	Assets []string
}

// Write renders the bundle into dir: index.html with nothing expanded, one
// page per project with that project expanded, and the static assets.
func Write(dir string, b *content.Bundle, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, p := range b.Catalog.Projects() {
		if !fileSafeID.MatchString(p.ID) {
			return nil, fmt.Errorf("project id %q cannot be used as a file name", p.ID)
		}
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	write := func(rel string, data []byte) error {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	page := func(rel string, sel portfolio.Selection, depth int) error {
		var buf bytes.Buffer
		data := web.BuildPage(b, sel, portfolio.SectionHome, linkerAt(depth))
		if err := renderer.Page(&buf, data); err != nil {
			return fmt.Errorf("render %s: %w", rel, err)
		}
		if err := write(rel, buf.Bytes()); err != nil {
			return err
		}
		res.Pages = append(res.Pages, rel)
		return nil
	}

	if err := page("index.html", portfolio.Selection{}, 0); err != nil {
		return nil, err
	}
	for _, p := range b.Catalog.Projects() {
		if err := page(ProjectPage(p.ID), portfolio.Selected(p.ID), 1); err != nil {
			return nil, err
		}
	}

	err = fs.WalkDir(web.StaticFiles(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(web.StaticFiles(), path)
		if err != nil {
			return err
		}
		rel := "static/" + path
		if err := write(rel, data); err != nil {
			return err
		}
		res.Assets = append(res.Assets, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}

	logger.Info("site exported",
		zap.String("dir", dir),
		zap.Int("pages", len(res.Pages)),
		zap.Int("assets", len(res.Assets)))
	return res, nil
}
