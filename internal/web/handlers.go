package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vforvitorio/portfolio/internal/portfolio"
)

const maxProjectIDLen = 64

// HealthResponse is the /healthz body.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// home renders the full page. The selection starts empty; ?project= is the
// link target for browsers without HTMX. A malformed project falls back to
// the grid so the page is never replaced by a bare fragment.
func (s *Server) home(c *gin.Context) {
	b := s.store.Current()
	sel, ok := parseSelection(c.Query("project"))
	if !ok {
		s.logger.Debug("ignoring malformed project query", zap.Int("len", len(c.Query("project"))))
		sel = portfolio.Selection{}
	}
	active := portfolio.ParseSection(c.Query("section"))

	data := BuildPage(b, sel, active, serverLinker{})
	s.countView(data.Projects.Layout)
	c.HTML(http.StatusOK, "page", data)
}

// nav returns the navigation bar with the requested section active.
func (s *Server) nav(c *gin.Context) {
	active := portfolio.ParseSection(c.Query("section"))
	c.HTML(http.StatusOK, "nav", BuildNav(active, serverLinker{}))
}

// projects returns the projects fragment for a given selection.
func (s *Server) projects(c *gin.Context) {
	sel, ok := parseSelection(c.Query("selected"))
	if !ok {
		s.renderError(c, http.StatusBadRequest, "Unknown project reference.")
		return
	}
	s.renderProjects(c, sel)
}

// toggleProject applies a card click. The fragment carries the current
// selection, so the server keeps no per-visitor state.
func (s *Server) toggleProject(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("id"))
	if id == "" || len(id) > maxProjectIDLen {
		s.renderError(c, http.StatusBadRequest, "Missing or invalid project.")
		return
	}
	current, ok := parseSelection(c.PostForm("selected"))
	if !ok {
		s.renderError(c, http.StatusBadRequest, "Unknown project reference.")
		return
	}

	next := current.Toggle(id)
	action := "expand"
	if next.IsEmpty() {
		action = "collapse"
	}
	if s.metrics != nil {
		s.metrics.Toggles.WithLabelValues(action).Inc()
	}
	s.logger.Debug("project toggled",
		zap.String("project", id),
		zap.String("action", action),
		zap.String("request_id", c.GetString("request_id")))

	s.renderProjects(c, next)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: s.opts.ServiceName,
		Version: s.opts.Version,
	})
}

func (s *Server) renderProjects(c *gin.Context, sel portfolio.Selection) {
	data := BuildProjects(s.store.Current(), sel, serverLinker{})
	s.countView(data.Layout)
	c.HTML(http.StatusOK, "projects", data)
}

func (s *Server) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error", msg)
}

func (s *Server) countView(layout portfolio.Layout) {
	if s.metrics != nil {
		s.metrics.ProjectViews.WithLabelValues(string(layout)).Inc()
	}
}

// parseSelection reads a selection carried by a request. Empty means
// nothing expanded; overlong values are rejected.
func parseSelection(raw string) (portfolio.Selection, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxProjectIDLen {
		return portfolio.Selection{}, false
	}
	if raw == "" {
		return portfolio.Selection{}, true
	}
	return portfolio.Selected(raw), true
}
