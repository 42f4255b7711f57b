package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aretw0/folio/internal/cli"
	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/observability"
	"github.com/aretw0/folio/pkg/site"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LayoutInfo describes a registered layout.
type LayoutInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default"`
}

// Server exposes a site's layouts and page resolutions for inspection.
type Server struct {
	Site     *site.Site
	Pages    []*layout.Page
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewHandler builds the router.
func NewHandler(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/layouts", s.Layouts)
	r.Get("/pages", s.PageResolutions)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// Layouts handles GET /layouts.
func (s *Server) Layouts(w http.ResponseWriter, r *http.Request) {
	def := s.Site.DefaultLayout().Name()
	names := s.Site.Layouts().Names()

	infos := make([]LayoutInfo, 0, len(names))
	for _, name := range names {
		info := LayoutInfo{Name: name, Default: name == def}
		if l, err := s.Site.Lookup(name); err == nil {
			if d, ok := l.(site.Layout); ok {
				info.Description = d.Description()
			}
		}
		infos = append(infos, info)
	}

	s.writeJSON(w, infos)
}

// PageResolutions handles GET /pages.
func (s *Server) PageResolutions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, cli.Resolve(s.Pages, s.Metrics))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil && s.Logger != nil {
		s.Logger.Error("failed to encode response", "err", err)
	}
}
